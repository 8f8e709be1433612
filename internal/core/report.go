package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/fokus-app/fokus/pkg/models"
)

// Reporter renders the shareable daily report and computes the estimation
// analytics. It only reads the store.
type Reporter struct {
	store  *Store
	engine *Engine
	clock  Clock
}

// NewReporter creates a Reporter over the given store.
func NewReporter(store *Store, engine *Engine, clock Clock) *Reporter {
	return &Reporter{store: store, engine: engine, clock: clock}
}

// ExportTaskReport renders today's accountability report as plain text. It
// covers the today set and finished tasks; a task counts as failed when it
// carries at least one checkpoint note.
func (r *Reporter) ExportTaskReport() string {
	now := r.clock.Now()
	a := r.store.Accountability()

	var relevant []*models.Task
	done := 0
	failed := 0
	for _, t := range r.store.snap.Tasks {
		if t.Status != models.StatusToday && t.Status != models.StatusDone {
			continue
		}
		relevant = append(relevant, t)
		if t.IsDone() {
			done++
		}
		if t.HasFailedFocus() {
			failed++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== LAPORAN FOKUS %s ===\n", DayKey(now))
	fmt.Fprintf(&b, "Task Selesai: %d\n", done)
	fmt.Fprintf(&b, "Task Gagal: %d\n", failed)
	fmt.Fprintf(&b, "Streak: %d hari\n", a.CurrentStreak)
	fmt.Fprintf(&b, "Reputasi: %d/100\n", a.ReputationScore)
	fmt.Fprintf(&b, "Gagal fokus hari ini: %d\n", r.engine.FailedToday(now))

	for _, t := range relevant {
		verdict := "FAIL"
		if t.IsDone() {
			verdict = "DONE"
		}
		fmt.Fprintf(&b, "- %s: [%s]", t.Title, verdict)
		if t.HasFailedFocus() {
			b.WriteString(" (gagal fokus)")
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Analytics is the estimation-accuracy rollup over finished work.
type Analytics struct {
	TotalCompleted int
	TotalEstimated int
	TotalActual    int
	Accuracy       int
	AvgFocusTime   int
}

// GetAnalytics aggregates finished sub-ideas and plain tasks; main-idea
// containers never carry work minutes and are excluded. Accuracy is the
// deviation-based percentage and is left unclamped: wildly wrong estimates
// read as negative rather than hiding at zero.
func (r *Reporter) GetAnalytics() Analytics {
	var a Analytics
	for _, t := range r.store.snap.Tasks {
		if !t.IsDone() || t.IsMainIdea {
			continue
		}
		a.TotalCompleted++
		a.TotalEstimated += t.EstimatedMinutes
		a.TotalActual += t.ActualMinutes
	}

	if a.TotalEstimated > 0 {
		deviation := math.Abs(float64(a.TotalActual - a.TotalEstimated))
		a.Accuracy = int(math.Round((1 - deviation/float64(a.TotalEstimated)) * 100))
	} else {
		a.Accuracy = 100
	}
	if a.TotalCompleted > 0 {
		a.AvgFocusTime = int(math.Round(float64(a.TotalActual) / float64(a.TotalCompleted)))
	}
	return a
}
