package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/fokus-app/fokus/pkg/models"
	"pgregory.net/rapid"
)

func genAlphaString(t *rapid.T, label string, minLen, maxLen int) string {
	letters := "abcdefghijklmnopqrstuvwxyz "
	n := rapid.IntRange(minLen, maxLen).Draw(t, label+"Len")
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rapid.IntRange(0, len(letters)-1).Draw(t, label+"Char")]
	}
	return string(b)
}

func genStatus(t *rapid.T) models.TaskStatus {
	statuses := []models.TaskStatus{models.StatusBacklog, models.StatusToday, models.StatusDone}
	return statuses[rapid.IntRange(0, len(statuses)-1).Draw(t, "statusIdx")]
}

func genTask(t *rapid.T, i int) *models.Task {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(rapid.IntRange(0, 10000).Draw(t, fmt.Sprintf("created%d", i))) * time.Minute)

	nNotes := rapid.IntRange(0, 3).Draw(t, fmt.Sprintf("nNotes%d", i))
	notes := make([]string, 0, nNotes)
	for j := 0; j < nNotes; j++ {
		notes = append(notes, genAlphaString(t, fmt.Sprintf("note%d_%d", i, j), 5, 30)+" (14:30)")
	}

	return &models.Task{
		ID:               fmt.Sprintf("IDE-%04d", i+1),
		Title:            genAlphaString(t, fmt.Sprintf("title%d", i), 1, 40),
		Status:           genStatus(t),
		CreatedAt:        created,
		Notes:            notes,
		IsMainIdea:       rapid.Bool().Draw(t, fmt.Sprintf("main%d", i)),
		EstimatedMinutes: rapid.IntRange(0, 240).Draw(t, fmt.Sprintf("est%d", i)),
		ActualMinutes:    rapid.IntRange(0, 240).Draw(t, fmt.Sprintf("act%d", i)),
	}
}

func TestSnapshotRoundTrip(tt *testing.T) {
	rapid.Check(tt, func(t *rapid.T) {
		n := rapid.IntRange(0, 15).Draw(t, "n")
		tasks := make([]*models.Task, n)
		for i := range tasks {
			tasks[i] = genTask(t, i)
		}

		snap := &models.Snapshot{
			Tasks:       tasks,
			TaskCounter: n,
			Accountability: models.Accountability{
				FailedAttempts:  rapid.IntRange(0, 5).Draw(t, "attempts"),
				CurrentStreak:   rapid.IntRange(0, 30).Draw(t, "streak"),
				LongestStreak:   rapid.IntRange(0, 60).Draw(t, "longest"),
				ReputationScore: rapid.IntRange(0, 100).Draw(t, "rep"),
			},
		}

		store := NewSnapshotStore(tt.TempDir())
		if err := store.Save(snap); err != nil {
			t.Fatal(err)
		}
		loaded, err := store.Load()
		if err != nil {
			t.Fatal(err)
		}

		if len(loaded.Tasks) != n {
			t.Fatalf("expected %d tasks, got %d", n, len(loaded.Tasks))
		}
		for i, orig := range snap.Tasks {
			got := loaded.Tasks[i]
			if got.ID != orig.ID || got.Title != orig.Title || got.Status != orig.Status {
				t.Fatalf("task %d mismatch: %+v vs %+v", i, got, orig)
			}
			if !got.CreatedAt.Equal(orig.CreatedAt) {
				t.Fatalf("task %d created-at mismatch: %v vs %v", i, got.CreatedAt, orig.CreatedAt)
			}
			if len(got.Notes) != len(orig.Notes) {
				t.Fatalf("task %d notes lost: %v vs %v", i, got.Notes, orig.Notes)
			}
			for j := range orig.Notes {
				if got.Notes[j] != orig.Notes[j] {
					t.Fatalf("task %d note %d mismatch: %q vs %q", i, j, got.Notes[j], orig.Notes[j])
				}
			}
			if got.IsMainIdea != orig.IsMainIdea ||
				got.EstimatedMinutes != orig.EstimatedMinutes ||
				got.ActualMinutes != orig.ActualMinutes {
				t.Fatalf("task %d fields mismatch: %+v vs %+v", i, got, orig)
			}
		}
		if loaded.Accountability.ReputationScore != snap.Accountability.ReputationScore ||
			loaded.Accountability.FailedAttempts != snap.Accountability.FailedAttempts ||
			loaded.Accountability.CurrentStreak != snap.Accountability.CurrentStreak ||
			loaded.Accountability.LongestStreak != snap.Accountability.LongestStreak {
			t.Fatalf("accountability mismatch: %+v vs %+v", loaded.Accountability, snap.Accountability)
		}
		if loaded.TaskCounter != n {
			t.Fatalf("counter mismatch: %d vs %d", loaded.TaskCounter, n)
		}
	})
}
