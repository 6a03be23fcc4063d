package tracker

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/quitlog/quitlog/internal/models"
	"github.com/quitlog/quitlog/internal/species"
	"github.com/quitlog/quitlog/internal/storage"
)

// memBackend is an in-memory storage.Backend. Individual slots can be
// made to fail writes to exercise the persist error path.
type memBackend struct {
	slots   map[string][]byte
	failing map[string]bool
}

func newMemBackend() *memBackend {
	return &memBackend{
		slots:   make(map[string][]byte),
		failing: make(map[string]bool),
	}
}

func (b *memBackend) Init() error  { return nil }
func (b *memBackend) Load() error  { return nil }
func (b *memBackend) Close() error { return nil }

func (b *memBackend) Get(key string) ([]byte, bool, error) {
	raw, ok := b.slots[key]
	return raw, ok, nil
}

func (b *memBackend) Set(key string, value []byte) error {
	if b.failing[key] {
		return errors.New("disk full")
	}
	b.slots[key] = value
	return nil
}

func (b *memBackend) GetConfigPath() string { return "mem" }

type fixture struct {
	backend *memBackend
	tracker *Tracker
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		backend: newMemBackend(),
		now:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.tracker = New(storage.New(f.backend),
		WithClock(func() time.Time { return f.now }),
		WithUndoWindow(10*time.Second),
	)
	if err := f.tracker.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return f
}

func (f *fixture) add(t *testing.T, title string) models.GiveUp {
	t.Helper()
	result, err := f.tracker.Add(AddInput{Title: title})
	if err != nil {
		t.Fatalf("Add(%q): %v", title, err)
	}
	return result.Item
}

func TestAddPrependsAndCounts(t *testing.T) {
	f := newFixture(t)
	f.add(t, "jogging")
	f.add(t, "journaling")
	f.add(t, "cold showers")

	got := f.tracker.GiveUps()
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	want := []string{"cold showers", "journaling", "jogging"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("record %d = %q, want %q", i, got[i].Title, title)
		}
	}

	if total, _ := f.tracker.Totals(); total != 3 {
		t.Errorf("give-up total = %d, want 3", total)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	f := newFixture(t)
	if _, err := f.tracker.Add(AddInput{Title: "   "}); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("err = %v, want ErrEmptyTitle", err)
	}
	if len(f.tracker.GiveUps()) != 0 {
		t.Error("blank add should not create a record")
	}
}

func TestAddDefaultsPlannedAt(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")
	if item.PlannedAt != f.now.Format("Jan 2 15:04") {
		t.Errorf("PlannedAt = %q", item.PlannedAt)
	}
	if item.CreatedAt != f.now {
		t.Errorf("CreatedAt = %v", item.CreatedAt)
	}
}

func TestAddUniqueIDs(t *testing.T) {
	f := newFixture(t)
	a := f.add(t, "one")
	b := f.add(t, "two")
	if a.ID == b.ID {
		t.Fatalf("records share id %q", a.ID)
	}
}

func TestAddUnlocksFirstBadge(t *testing.T) {
	f := newFixture(t)
	result, err := f.tracker.Add(AddInput{Title: "jogging"})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.NewlyUnlocked) != 1 || result.NewlyUnlocked[0].ID != "first-surrender" {
		t.Fatalf("NewlyUnlocked = %v", result.NewlyUnlocked)
	}

	// The second record reaches no new threshold.
	result, err = f.tracker.Add(AddInput{Title: "journaling"})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.NewlyUnlocked) != 0 {
		t.Fatalf("second add re-unlocked %v", result.NewlyUnlocked)
	}

	ids := f.tracker.UnlockedBadgeIDs()
	if len(ids) != 1 || ids[0] != "first-surrender" {
		t.Fatalf("persisted unlock set = %v", ids)
	}
}

func TestPromotePartitionsCollections(t *testing.T) {
	f := newFixture(t)
	f.add(t, "jogging")
	b := f.add(t, "journaling")
	f.add(t, "cold showers")
	if err := f.tracker.TogglePin(b.ID); err != nil {
		t.Fatal(err)
	}

	f.now = f.now.Add(time.Hour)
	if err := f.tracker.Promote(b.ID); err != nil {
		t.Fatalf("Promote: %v", err)
	}

	for _, item := range f.tracker.GiveUps() {
		if item.ID == b.ID {
			t.Error("promoted record still in active collection")
		}
	}
	achieved := f.tracker.Achieved()
	if len(achieved) != 1 || achieved[0].ID != b.ID {
		t.Fatalf("achieved = %v", achieved)
	}
	if achieved[0].Title != "journaling" || achieved[0].AchievedAt != f.now {
		t.Errorf("promoted record = %+v", achieved[0])
	}
	if !achieved[0].Pinned {
		t.Error("pin should survive promotion")
	}

	giveUpTotal, achievedTotal := f.tracker.Totals()
	if giveUpTotal != 3 {
		t.Errorf("give-up total changed on promote: %d", giveUpTotal)
	}
	if achievedTotal != 1 {
		t.Errorf("achieved total = %d, want 1", achievedTotal)
	}
}

func TestPromoteUnknownID(t *testing.T) {
	f := newFixture(t)
	if err := f.tracker.Promote("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteKeepsTotals(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")

	if _, err := f.tracker.Delete(item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.tracker.GiveUps()) != 0 {
		t.Error("record still present after delete")
	}
	if total, _ := f.tracker.Totals(); total != 1 {
		t.Errorf("delete changed the cumulative total: %d", total)
	}
	if ids := f.tracker.UnlockedBadgeIDs(); len(ids) != 1 {
		t.Errorf("delete changed the unlock set: %v", ids)
	}
}

func TestUndoWithinWindow(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")
	if _, err := f.tracker.Delete(item.ID); err != nil {
		t.Fatal(err)
	}

	f.now = f.now.Add(9 * time.Second)
	restored, err := f.tracker.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if restored.ID != item.ID {
		t.Errorf("restored %q, want %q", restored.ID, item.ID)
	}

	got := f.tracker.GiveUps()
	if len(got) != 1 || got[0].ID != item.ID {
		t.Fatalf("active collection = %v", got)
	}

	// The buffer is one-shot.
	if _, err := f.tracker.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("second undo err = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoAfterDeadline(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")
	if _, err := f.tracker.Delete(item.ID); err != nil {
		t.Fatal(err)
	}

	f.now = f.now.Add(11 * time.Second)
	if _, err := f.tracker.Undo(); !errors.Is(err, ErrUndoExpired) {
		t.Fatalf("err = %v, want ErrUndoExpired", err)
	}
	if len(f.tracker.GiveUps()) != 0 {
		t.Error("expired undo restored the record")
	}
}

func TestUndoSurvivesReload(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")
	if _, err := f.tracker.Delete(item.ID); err != nil {
		t.Fatal(err)
	}

	// A second process over the same store can still undo in time.
	later := New(storage.New(f.backend),
		WithClock(func() time.Time { return f.now.Add(5 * time.Second) }),
		WithUndoWindow(10*time.Second),
	)
	if err := later.Reload(); err != nil {
		t.Fatal(err)
	}
	restored, err := later.Undo()
	if err != nil {
		t.Fatalf("Undo after reload: %v", err)
	}
	if restored.ID != item.ID {
		t.Errorf("restored %q, want %q", restored.ID, item.ID)
	}

	// The buffer was cleared in storage too.
	third := New(storage.New(f.backend))
	if err := third.Reload(); err != nil {
		t.Fatal(err)
	}
	if _, err := third.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("err = %v, want ErrNothingToUndo", err)
	}
}

func TestPendingDeletionExpires(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")
	if _, err := f.tracker.Delete(item.ID); err != nil {
		t.Fatal(err)
	}

	if pending, ok := f.tracker.PendingDeletion(); !ok || pending.Item.ID != item.ID {
		t.Fatalf("pending = %+v, ok = %v", pending, ok)
	}
	f.now = f.now.Add(time.Minute)
	if _, ok := f.tracker.PendingDeletion(); ok {
		t.Error("pending deletion should expire")
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")
	if _, err := f.tracker.Delete(item.ID); err != nil {
		t.Fatal(err)
	}

	if err := f.tracker.Restore(item); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if err := f.tracker.Restore(item); err != nil {
		t.Fatalf("second Restore: %v", err)
	}
	if got := f.tracker.GiveUps(); len(got) != 1 {
		t.Fatalf("restore duplicated the record: %d entries", len(got))
	}
}

func TestTogglePin(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")

	if err := f.tracker.TogglePin(item.ID); err != nil {
		t.Fatal(err)
	}
	if !f.tracker.GiveUps()[0].Pinned {
		t.Error("record should be pinned")
	}
	if err := f.tracker.TogglePin(item.ID); err != nil {
		t.Fatal(err)
	}
	if f.tracker.GiveUps()[0].Pinned {
		t.Error("record should be unpinned")
	}
	if err := f.tracker.TogglePin("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCounterBackfillRunsOnce(t *testing.T) {
	backend := newMemBackend()
	store := storage.New(backend)

	// A store from before the counters existed: collections only.
	if err := store.SaveGiveUps([]models.GiveUp{
		{ID: "a", Title: "jogging"},
		{ID: "b", Title: "journaling"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveAchieved([]models.Achieved{
		{GiveUp: models.GiveUp{ID: "c", Title: "cold showers"}},
	}); err != nil {
		t.Fatal(err)
	}

	tr := New(store)
	if err := tr.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	giveUpTotal, achievedTotal := tr.Totals()
	if giveUpTotal != 3 || achievedTotal != 1 {
		t.Fatalf("backfilled totals = %d, %d", giveUpTotal, achievedTotal)
	}

	// The backfill is persisted, so a record deletion followed by a reload
	// must not re-derive a smaller total.
	if _, err := tr.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Reload(); err != nil {
		t.Fatal(err)
	}
	if giveUpTotal, _ = tr.Totals(); giveUpTotal != 3 {
		t.Errorf("total after delete+reload = %d, want 3", giveUpTotal)
	}
}

func TestSpeciesSyncOnReload(t *testing.T) {
	f := newFixture(t)
	f.add(t, "jogging")
	f.add(t, "journaling")

	if err := f.tracker.Reload(); err != nil {
		t.Fatal(err)
	}
	sea, sky := f.tracker.Species()
	if len(sea) != 2 {
		t.Fatalf("sea species = %v", sea)
	}
	if sea[0] != species.Name(species.SeaPrefix, 1) || sea[1] != species.Name(species.SeaPrefix, 2) {
		t.Errorf("sea species named %v", sea)
	}
	if len(sky) != 0 {
		t.Errorf("sky species = %v, want none before any promotion", sky)
	}

	if err := f.tracker.Promote(f.tracker.GiveUps()[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := f.tracker.Reload(); err != nil {
		t.Fatal(err)
	}
	if _, sky = f.tracker.Species(); len(sky) != 1 {
		t.Errorf("sky species = %v, want one after promotion", sky)
	}
}

func TestPersistErrorKeepsMemoryAhead(t *testing.T) {
	f := newFixture(t)
	f.backend.failing[storage.KeyGiveUps] = true

	_, err := f.tracker.Add(AddInput{Title: "jogging"})
	var perr *PersistError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *PersistError", err)
	}
	found := false
	for _, slot := range perr.Slots {
		if slot == storage.KeyGiveUps {
			found = true
		}
	}
	if !found {
		t.Errorf("failed slots = %v, want %s listed", perr.Slots, storage.KeyGiveUps)
	}

	// Memory moved on even though the slot write failed.
	if len(f.tracker.GiveUps()) != 1 {
		t.Error("record missing from memory after failed persist")
	}
	if total, _ := f.tracker.Totals(); total != 1 {
		t.Errorf("total = %d, want 1", total)
	}

	// The slots that could be written were.
	if _, ok := f.backend.slots[storage.KeyGiveUpTotal]; !ok {
		t.Error("healthy slot was skipped after the failing one")
	}
}

func TestSubtitleRotationPersists(t *testing.T) {
	f := newFixture(t)
	first := f.tracker.Subtitle()

	next, err := f.tracker.AdvanceSubtitle()
	if err != nil {
		t.Fatal(err)
	}
	if next == first {
		t.Error("subtitle did not advance")
	}

	var index int
	raw, ok := f.backend.slots[storage.KeySubtitle]
	if !ok {
		t.Fatal("subtitle index not persisted")
	}
	if err := json.Unmarshal(raw, &index); err != nil || index != 1 {
		t.Errorf("persisted index = %d (%v)", index, err)
	}
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	next := models.Profile{Nickname: "ghost", ShowOnPoster: true}
	if err := f.tracker.UpdateProfile(next); err != nil {
		t.Fatal(err)
	}
	if f.tracker.Profile() != next {
		t.Errorf("profile = %+v", f.tracker.Profile())
	}

	if err := f.tracker.Reload(); err != nil {
		t.Fatal(err)
	}
	if f.tracker.Profile() != next {
		t.Errorf("profile after reload = %+v", f.tracker.Profile())
	}
}

func TestDeleteAchieved(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "jogging")
	if err := f.tracker.Promote(item.ID); err != nil {
		t.Fatal(err)
	}

	removed, err := f.tracker.DeleteAchieved(item.ID)
	if err != nil {
		t.Fatalf("DeleteAchieved: %v", err)
	}
	if removed.ID != item.ID {
		t.Errorf("removed %q", removed.ID)
	}
	if len(f.tracker.Achieved()) != 0 {
		t.Error("achieved record still present")
	}
	if _, achievedTotal := f.tracker.Totals(); achievedTotal != 1 {
		t.Errorf("achieved total = %d, want 1 (cumulative)", achievedTotal)
	}
}
