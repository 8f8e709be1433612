package core

import (
	"testing"

	"github.com/fokus-app/fokus/pkg/models"
)

func TestAddTask(t *testing.T) {
	env := newTestEnv(t)

	task := env.addTask(t, "Tulis draft artikel")
	if task.ID != "IDE-0001" {
		t.Fatalf("expected first ID IDE-0001, got %s", task.ID)
	}
	if task.Status != models.StatusBacklog {
		t.Fatalf("new task should land in the backlog, got %s", task.Status)
	}
	if env.persist.saves != 1 {
		t.Fatalf("expected 1 commit, got %d", env.persist.saves)
	}
}

func TestAddTask_TrimsAndRejectsEmptyTitle(t *testing.T) {
	env := newTestEnv(t)

	task := env.addTask(t, "  judul dengan spasi  ")
	if task.Title != "judul dengan spasi" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}

	if _, err := env.repo.AddTask("   ", AddTaskOpts{}); err == nil {
		t.Fatal("expected error for blank title")
	}
	if env.persist.saves != 1 {
		t.Fatalf("rejected add must not commit, got %d saves", env.persist.saves)
	}
}

func TestAddTask_NewestFirst(t *testing.T) {
	env := newTestEnv(t)

	env.addTask(t, "pertama")
	env.addTask(t, "kedua")
	env.addTask(t, "ketiga")

	tasks := env.store.Tasks()
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "ketiga" || tasks[2].Title != "pertama" {
		t.Fatalf("expected newest first, got %q ... %q", tasks[0].Title, tasks[2].Title)
	}
}

func TestAddTask_MainIdeaCannotHaveParent(t *testing.T) {
	env := newTestEnv(t)
	parent, _ := env.repo.AddTask("Proyek besar", AddTaskOpts{MainIdea: true})

	_, err := env.repo.AddTask("anak", AddTaskOpts{MainIdea: true, ParentID: parent.ID})
	mustValidationError(t, err)
}

func TestAddSubIdea(t *testing.T) {
	env := newTestEnv(t)
	parent, err := env.repo.AddTask("Bangun kursus online", AddTaskOpts{MainIdea: true})
	if err != nil {
		t.Fatalf("adding main idea: %v", err)
	}

	sub, err := env.repo.AddSubIdea(parent.ID, "Rekam modul 1", 0)
	if err != nil {
		t.Fatalf("adding sub-idea: %v", err)
	}
	if sub.ParentID != parent.ID {
		t.Fatalf("expected parent %s, got %s", parent.ID, sub.ParentID)
	}
	if sub.EstimatedMinutes != 25 {
		t.Fatalf("expected default estimate 25, got %d", sub.EstimatedMinutes)
	}
}

func TestAddSubIdea_ParentChecks(t *testing.T) {
	env := newTestEnv(t)
	plain := env.addTask(t, "bukan main idea")

	if _, err := env.repo.AddSubIdea("IDE-9999", "yatim", 10); err == nil {
		t.Fatal("expected error for missing parent")
	}
	if _, err := env.repo.AddSubIdea(plain.ID, "salah induk", 10); err == nil {
		t.Fatal("expected error for non-main-idea parent")
	}
}

func TestDeleteTask(t *testing.T) {
	env := newTestEnv(t)
	task := env.addTask(t, "hapus saya")

	if err := env.repo.DeleteTask(task.ID); err != nil {
		t.Fatalf("deleting: %v", err)
	}
	if _, err := env.store.Get(task.ID); err == nil {
		t.Fatal("deleted task should not be found")
	}

	if err := env.repo.DeleteTask("IDE-9999"); err == nil {
		t.Fatal("expected error deleting unknown task")
	}
}

func TestDeleteMainIdea_OrphansChildren(t *testing.T) {
	env := newTestEnv(t)
	parent, _ := env.repo.AddTask("Induk", AddTaskOpts{MainIdea: true})
	sub, _ := env.repo.AddSubIdea(parent.ID, "anak", 15)

	if err := env.repo.DeleteTask(parent.ID); err != nil {
		t.Fatalf("deleting main idea: %v", err)
	}

	got, err := env.store.Get(sub.ID)
	if err != nil {
		t.Fatalf("sub-idea must survive: %v", err)
	}
	if got.ParentID != "" {
		t.Fatalf("expected cleared parent link, got %q", got.ParentID)
	}
}

func TestMoveToToday_Cap(t *testing.T) {
	env := newTestEnv(t)
	env.addToday(t, "satu")
	env.addToday(t, "dua")
	env.addToday(t, "tiga")
	fourth := env.addTask(t, "empat")

	err := env.repo.MoveToToday(fourth.ID)
	p := mustPolicyError(t, err, RejectDailyCap)
	if p.Alert.Title != "✋ STOP!" {
		t.Fatalf("unexpected alert title %q", p.Alert.Title)
	}

	got, _ := env.store.Get(fourth.ID)
	if got.Status != models.StatusBacklog {
		t.Fatalf("rejected promotion must not change status, got %s", got.Status)
	}
}

func TestMoveToToday_CapReopensAfterCompletion(t *testing.T) {
	env := newTestEnv(t)
	first := env.addToday(t, "satu")
	env.addToday(t, "dua")
	env.addToday(t, "tiga")

	if err := env.sessions.StartFocus(first.ID); err != nil {
		t.Fatalf("starting focus: %v", err)
	}
	if err := env.sessions.CompleteTask(first.ID); err != nil {
		t.Fatalf("completing: %v", err)
	}

	fourth := env.addTask(t, "empat")
	if err := env.repo.MoveToToday(fourth.ID); err != nil {
		t.Fatalf("slot should reopen after completion: %v", err)
	}
}

func TestMoveToToday_MainIdeaRejected(t *testing.T) {
	env := newTestEnv(t)
	parent, _ := env.repo.AddTask("Induk", AddTaskOpts{MainIdea: true})

	err := env.repo.MoveToToday(parent.ID)
	mustPolicyError(t, err, RejectMainIdeaMove)

	got, _ := env.store.Get(parent.ID)
	if got.Status != models.StatusBacklog {
		t.Fatalf("main idea must stay in backlog, got %s", got.Status)
	}
}

func TestMoveToBacklog(t *testing.T) {
	env := newTestEnv(t)
	task := env.addToday(t, "mundur lagi")

	if err := env.repo.MoveToBacklog(task.ID); err != nil {
		t.Fatalf("moving to backlog: %v", err)
	}
	got, _ := env.store.Get(task.ID)
	if got.Status != models.StatusBacklog {
		t.Fatalf("expected backlog, got %s", got.Status)
	}
}

func TestGetSubIdeas_ExcludesDone(t *testing.T) {
	env := newTestEnv(t)
	parent, _ := env.repo.AddTask("Induk", AddTaskOpts{MainIdea: true})
	a, _ := env.repo.AddSubIdea(parent.ID, "sub a", 10)
	b, _ := env.repo.AddSubIdea(parent.ID, "sub b", 10)

	if err := env.repo.MoveToToday(a.ID); err != nil {
		t.Fatalf("promoting: %v", err)
	}
	if err := env.sessions.StartFocus(a.ID); err != nil {
		t.Fatalf("focusing: %v", err)
	}
	if err := env.sessions.CompleteTask(a.ID); err != nil {
		t.Fatalf("completing: %v", err)
	}

	subs := env.repo.GetSubIdeas(parent.ID)
	if len(subs) != 1 || subs[0].ID != b.ID {
		t.Fatalf("expected only the unfinished sub-idea, got %d entries", len(subs))
	}
}

func TestGetProgress(t *testing.T) {
	env := newTestEnv(t)
	parent, _ := env.repo.AddTask("Induk", AddTaskOpts{MainIdea: true})

	if p := env.repo.GetProgress(parent.ID); p.Total != 0 || p.Percentage != 0 {
		t.Fatalf("childless parent must report zeros, got %+v", p)
	}

	a, _ := env.repo.AddSubIdea(parent.ID, "sub a", 10)
	env.repo.AddSubIdea(parent.ID, "sub b", 10)
	env.repo.AddSubIdea(parent.ID, "sub c", 10)

	if err := env.repo.MoveToToday(a.ID); err != nil {
		t.Fatalf("promoting: %v", err)
	}
	if err := env.sessions.StartFocus(a.ID); err != nil {
		t.Fatalf("focusing: %v", err)
	}
	if err := env.sessions.CompleteTask(a.ID); err != nil {
		t.Fatalf("completing: %v", err)
	}

	p := env.repo.GetProgress(parent.ID)
	if p.Completed != 1 || p.Total != 3 {
		t.Fatalf("expected 1/3, got %d/%d", p.Completed, p.Total)
	}
	if p.Percentage != 33 {
		t.Fatalf("expected 33%%, got %d%%", p.Percentage)
	}
}
