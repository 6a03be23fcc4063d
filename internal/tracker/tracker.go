// Package tracker owns the in-memory snapshot of every record collection
// and is the only code that mutates it. Each operation updates memory
// first, then mirrors the touched slots to storage; a failed write comes
// back as *PersistError while memory stays ahead of disk.
package tracker

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quitlog/quitlog/internal/badges"
	"github.com/quitlog/quitlog/internal/constants"
	"github.com/quitlog/quitlog/internal/logger"
	"github.com/quitlog/quitlog/internal/models"
	"github.com/quitlog/quitlog/internal/species"
	"github.com/quitlog/quitlog/internal/storage"
)

// Tracker is not safe for concurrent use: the CLI and TUI drive one
// operation at a time, which is the same single-writer convention the
// storage layer assumes.
type Tracker struct {
	store      *storage.Store
	now        func() time.Time
	undoWindow time.Duration

	giveUps       []models.GiveUp
	achieved      []models.Achieved
	unlockedIDs   []string
	giveUpTotal   int
	achievedTotal int
	profile       models.Profile
	subtitleIndex int

	pendingUndo *models.PendingDeletion
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock substitutes the time source. Tests use this.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithUndoWindow overrides how long a deletion stays restorable.
func WithUndoWindow(d time.Duration) Option {
	return func(t *Tracker) {
		t.undoWindow = d
	}
}

func New(store *storage.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:      store,
		now:        time.Now,
		undoWindow: constants.UndoWindow,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Reload pulls every slot into memory. When a counter slot has never been
// stored it is seeded from the collection lengths and written back, a
// one-time migration for data predating the counters. Species lists are
// then extended to match the totals.
func (t *Tracker) Reload() error {
	if err := t.store.Load(); err != nil {
		return err
	}

	t.giveUps = t.store.GiveUps()
	t.achieved = t.store.Achieved()
	t.unlockedIDs = t.store.UnlockedBadgeIDs()
	t.profile = t.store.Profile()
	t.pendingUndo = t.store.PendingDeletion()
	t.subtitleIndex = t.store.SubtitleIndex() % len(constants.AchievedSubtitles)

	var writes []write

	total, ok := t.store.GiveUpTotal()
	if !ok {
		total = len(t.giveUps) + len(t.achieved)
		writes = append(writes, write{storage.KeyGiveUpTotal, func() error {
			return t.store.SaveGiveUpTotal(total)
		}})
		logger.Info("backfilled give-up total", "total", total)
	}
	t.giveUpTotal = total

	achievedTotal, ok := t.store.AchievedTotal()
	if !ok {
		achievedTotal = len(t.achieved)
		writes = append(writes, write{storage.KeyAchievedTotal, func() error {
			return t.store.SaveAchievedTotal(achievedTotal)
		}})
		logger.Info("backfilled achieved total", "total", achievedTotal)
	}
	t.achievedTotal = achievedTotal

	if err := t.persist(writes...); err != nil {
		return err
	}

	return t.syncSpecies()
}

// AddInput carries the user-entered fields for a new give-up.
type AddInput struct {
	Title     string
	Reason    string
	PlannedAt string
}

// AddResult is what Add hands back for rendering.
type AddResult struct {
	Item          models.GiveUp
	NewlyUnlocked []badges.Definition
}

// Add records a new give-up at the front of the active collection,
// advances the cumulative total, and unlocks any badges the new total
// reaches.
func (t *Tracker) Add(input AddInput) (AddResult, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return AddResult{}, ErrEmptyTitle
	}

	now := t.now()
	plannedAt := strings.TrimSpace(input.PlannedAt)
	if plannedAt == "" {
		plannedAt = now.Format(constants.PlannedAtFormat)
	}

	item := models.GiveUp{
		ID:        uuid.New().String(),
		Title:     title,
		Reason:    strings.TrimSpace(input.Reason),
		PlannedAt: plannedAt,
		CreatedAt: now,
	}

	t.giveUps = append([]models.GiveUp{item}, t.giveUps...)
	t.giveUpTotal++

	newly := badges.NewlyUnlocked(t.unlockedIDs, t.giveUpTotal)
	for _, def := range newly {
		t.unlockedIDs = append(t.unlockedIDs, def.ID)
	}

	err := t.persist(
		write{storage.KeyGiveUps, func() error { return t.store.SaveGiveUps(t.giveUps) }},
		write{storage.KeyBadges, func() error { return t.store.SaveUnlockedBadgeIDs(t.unlockedIDs) }},
		write{storage.KeyGiveUpTotal, func() error { return t.store.SaveGiveUpTotal(t.giveUpTotal) }},
	)

	return AddResult{Item: item, NewlyUnlocked: newly}, err
}

// TogglePin flips the pin on an active record.
func (t *Tracker) TogglePin(id string) error {
	for i := range t.giveUps {
		if t.giveUps[i].ID == id {
			t.giveUps[i].Pinned = !t.giveUps[i].Pinned
			return t.persist(write{storage.KeyGiveUps, func() error {
				return t.store.SaveGiveUps(t.giveUps)
			}})
		}
	}
	return ErrNotFound
}

// Promote moves an active record to the achieved collection, stamping the
// completion time. The id leaves the active collection and appears exactly
// once in achieved; every other field is carried over unchanged.
func (t *Tracker) Promote(id string) error {
	index := -1
	for i := range t.giveUps {
		if t.giveUps[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrNotFound
	}

	item := t.giveUps[index]
	t.giveUps = append(t.giveUps[:index], t.giveUps[index+1:]...)
	t.achieved = append([]models.Achieved{{
		GiveUp:     item,
		AchievedAt: t.now(),
	}}, t.achieved...)
	t.achievedTotal++

	return t.persist(
		write{storage.KeyGiveUps, func() error { return t.store.SaveGiveUps(t.giveUps) }},
		write{storage.KeyAchieved, func() error { return t.store.SaveAchieved(t.achieved) }},
		write{storage.KeyAchievedTotal, func() error { return t.store.SaveAchievedTotal(t.achievedTotal) }},
	)
}

// Delete removes an active record and arms the undo buffer, which is
// persisted so a later invocation can still undo within the window.
// Cumulative totals are untouched, so badges stay unlocked and species
// stay found.
func (t *Tracker) Delete(id string) (models.GiveUp, error) {
	index := -1
	for i := range t.giveUps {
		if t.giveUps[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.GiveUp{}, ErrNotFound
	}

	item := t.giveUps[index]
	t.giveUps = append(t.giveUps[:index], t.giveUps[index+1:]...)
	t.pendingUndo = &models.PendingDeletion{
		Item:      item,
		ExpiresAt: t.now().Add(t.undoWindow),
	}

	err := t.persist(
		write{storage.KeyGiveUps, func() error { return t.store.SaveGiveUps(t.giveUps) }},
		write{storage.KeyPendingUndo, func() error { return t.store.SavePendingDeletion(t.pendingUndo) }},
	)
	return item, err
}

// Undo restores the most recently deleted record if the deadline has not
// passed. The buffer is one-shot either way.
func (t *Tracker) Undo() (models.GiveUp, error) {
	pending := t.pendingUndo
	if pending == nil {
		return models.GiveUp{}, ErrNothingToUndo
	}
	t.pendingUndo = nil
	clearBuffer := write{storage.KeyPendingUndo, func() error {
		return t.store.SavePendingDeletion(nil)
	}}

	if t.now().After(pending.ExpiresAt) {
		_ = t.persist(clearBuffer)
		return models.GiveUp{}, ErrUndoExpired
	}

	for i := range t.giveUps {
		if t.giveUps[i].ID == pending.Item.ID {
			return pending.Item, t.persist(clearBuffer)
		}
	}
	t.giveUps = append([]models.GiveUp{pending.Item}, t.giveUps...)
	return pending.Item, t.persist(
		write{storage.KeyGiveUps, func() error { return t.store.SaveGiveUps(t.giveUps) }},
		clearBuffer,
	)
}

// Restore re-inserts a previously deleted record at the front. Idempotent:
// if the id is already present this is a no-op. Counters never decremented
// on delete, so nothing to re-increment here.
func (t *Tracker) Restore(item models.GiveUp) error {
	for i := range t.giveUps {
		if t.giveUps[i].ID == item.ID {
			return nil
		}
	}

	t.giveUps = append([]models.GiveUp{item}, t.giveUps...)
	return t.persist(write{storage.KeyGiveUps, func() error {
		return t.store.SaveGiveUps(t.giveUps)
	}})
}

// PendingDeletion returns the record awaiting undo, if any and not yet
// expired.
func (t *Tracker) PendingDeletion() (models.PendingDeletion, bool) {
	if t.pendingUndo == nil || t.now().After(t.pendingUndo.ExpiresAt) {
		return models.PendingDeletion{}, false
	}
	return *t.pendingUndo, true
}

// ToggleAchievedPin flips the pin on an achieved record.
func (t *Tracker) ToggleAchievedPin(id string) error {
	for i := range t.achieved {
		if t.achieved[i].ID == id {
			t.achieved[i].Pinned = !t.achieved[i].Pinned
			return t.persist(write{storage.KeyAchieved, func() error {
				return t.store.SaveAchieved(t.achieved)
			}})
		}
	}
	return ErrNotFound
}

// DeleteAchieved removes an achieved record. No promotion or counter side
// effects, and no undo buffer: the original only offers undo on the active
// list.
func (t *Tracker) DeleteAchieved(id string) (models.Achieved, error) {
	index := -1
	for i := range t.achieved {
		if t.achieved[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Achieved{}, ErrNotFound
	}

	item := t.achieved[index]
	t.achieved = append(t.achieved[:index], t.achieved[index+1:]...)
	err := t.persist(write{storage.KeyAchieved, func() error {
		return t.store.SaveAchieved(t.achieved)
	}})
	return item, err
}

// GiveUps returns a copy of the active collection, most recent first.
func (t *Tracker) GiveUps() []models.GiveUp {
	return append([]models.GiveUp(nil), t.giveUps...)
}

// Achieved returns a copy of the achieved collection, most recent first.
func (t *Tracker) Achieved() []models.Achieved {
	return append([]models.Achieved(nil), t.achieved...)
}

// UnlockedBadgeIDs returns a copy of the persisted unlock set.
func (t *Tracker) UnlockedBadgeIDs() []string {
	return append([]string(nil), t.unlockedIDs...)
}

// UnlockedBadges resolves the unlock set against the catalog.
func (t *Tracker) UnlockedBadges() []badges.Definition {
	return badges.Unlocked(t.unlockedIDs)
}

// Totals returns the cumulative give-up and achieved counts.
func (t *Tracker) Totals() (giveUps, achieved int) {
	return t.giveUpTotal, t.achievedTotal
}

// Profile returns the current profile record.
func (t *Tracker) Profile() models.Profile {
	return t.profile
}

// UpdateProfile replaces the whole profile. Callers read-modify-write;
// there are no partial updates.
func (t *Tracker) UpdateProfile(next models.Profile) error {
	t.profile = next
	return t.persist(write{storage.KeyProfile, func() error {
		return t.store.SaveProfile(next)
	}})
}

// Subtitle returns the current achieved-list subtitle.
func (t *Tracker) Subtitle() string {
	return constants.AchievedSubtitles[t.subtitleIndex%len(constants.AchievedSubtitles)]
}

// AdvanceSubtitle moves the rotation forward and persists the index.
func (t *Tracker) AdvanceSubtitle() (string, error) {
	t.subtitleIndex = (t.subtitleIndex + 1) % len(constants.AchievedSubtitles)
	err := t.persist(write{storage.KeySubtitle, func() error {
		return t.store.SaveSubtitleIndex(t.subtitleIndex)
	}})
	return t.Subtitle(), err
}

// Species returns the current discovery lists.
func (t *Tracker) Species() (sea, sky []string) {
	return t.store.SeaSpecies(), t.store.SkySpecies()
}

// syncSpecies extends both discovery lists to their target lengths and
// persists whichever grew. Targets cannot shrink because the source totals
// are monotonic, so the lists are never truncated.
func (t *Tracker) syncSpecies() error {
	var writes []write

	sea := t.store.SeaSpecies()
	if next := species.Extend(sea, species.SeaPrefix, species.TargetCount(t.giveUpTotal)); len(next) > len(sea) {
		writes = append(writes, write{storage.KeySeaSpecies, func() error {
			return t.store.SaveSeaSpecies(next)
		}})
	}

	sky := t.store.SkySpecies()
	if next := species.Extend(sky, species.SkyPrefix, species.TargetCount(t.achievedTotal)); len(next) > len(sky) {
		writes = append(writes, write{storage.KeySkySpecies, func() error {
			return t.store.SaveSkySpecies(next)
		}})
	}

	return t.persist(writes...)
}

type write struct {
	slot string
	fn   func() error
}

// persist runs every write even if an earlier one fails, then reports the
// failures together. Stopping early would only widen the gap between
// memory and storage.
func (t *Tracker) persist(writes ...write) error {
	var failed []string
	var errs []error
	for _, w := range writes {
		if err := w.fn(); err != nil {
			failed = append(failed, w.slot)
			errs = append(errs, err)
			logger.Error("slot write failed", "slot", w.slot, "error", err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &PersistError{Slots: failed, Err: errors.Join(errs...)}
}
