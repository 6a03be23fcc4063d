package storage

import (
	"encoding/json"

	"github.com/quitlog/quitlog/internal/logger"
	"github.com/quitlog/quitlog/internal/models"
)

// Store is the typed slot layer over a Backend. Loads never fail to the
// caller: an absent or unparseable slot yields the documented default and
// a log line. Saves surface the backend error so callers can decide what
// to do about a store that stopped taking writes.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{
		backend: backend,
	}
}

func (s *Store) Init() error  { return s.backend.Init() }
func (s *Store) Load() error  { return s.backend.Load() }
func (s *Store) Close() error { return s.backend.Close() }

func (s *Store) GetConfigPath() string { return s.backend.GetConfigPath() }

// Backend exposes the underlying backend for diagnostics.
func (s *Store) Backend() Backend { return s.backend }

// loadSlot decodes a slot into def's type, falling back to def on absence
// or corruption.
func loadSlot[T any](s *Store, key string, def T) T {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		logger.Warn("slot read failed, using default", "slot", key, "error", err)
		return def
	}
	if !ok {
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("slot is corrupt, using default", "slot", key, "error", err)
		return def
	}
	return value
}

func saveSlot[T any](s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.backend.Set(key, raw)
}

// loadCount reads an integer slot and reports whether it was present, so
// the tracker can tell "never stored" apart from zero for the one-time
// counter backfill.
func loadCount(s *Store, key string) (int, bool) {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		logger.Warn("slot read failed, using default", "slot", key, "error", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}

	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("slot is corrupt, using default", "slot", key, "error", err)
		return 0, false
	}
	if value < 0 {
		return 0, false
	}
	return value, true
}

func (s *Store) GiveUps() []models.GiveUp {
	return loadSlot(s, KeyGiveUps, []models.GiveUp{})
}

func (s *Store) SaveGiveUps(items []models.GiveUp) error {
	return saveSlot(s, KeyGiveUps, items)
}

func (s *Store) Achieved() []models.Achieved {
	return loadSlot(s, KeyAchieved, []models.Achieved{})
}

func (s *Store) SaveAchieved(items []models.Achieved) error {
	return saveSlot(s, KeyAchieved, items)
}

func (s *Store) UnlockedBadgeIDs() []string {
	return loadSlot(s, KeyBadges, []string{})
}

func (s *Store) SaveUnlockedBadgeIDs(ids []string) error {
	return saveSlot(s, KeyBadges, ids)
}

func (s *Store) GiveUpTotal() (int, bool) {
	return loadCount(s, KeyGiveUpTotal)
}

func (s *Store) SaveGiveUpTotal(total int) error {
	return saveSlot(s, KeyGiveUpTotal, total)
}

func (s *Store) AchievedTotal() (int, bool) {
	return loadCount(s, KeyAchievedTotal)
}

func (s *Store) SaveAchievedTotal(total int) error {
	return saveSlot(s, KeyAchievedTotal, total)
}

func (s *Store) Profile() models.Profile {
	return loadSlot(s, KeyProfile, models.DefaultProfile())
}

func (s *Store) SaveProfile(profile models.Profile) error {
	return saveSlot(s, KeyProfile, profile)
}

func (s *Store) SeaSpecies() []string {
	return loadSlot(s, KeySeaSpecies, []string{})
}

func (s *Store) SaveSeaSpecies(list []string) error {
	return saveSlot(s, KeySeaSpecies, list)
}

func (s *Store) SkySpecies() []string {
	return loadSlot(s, KeySkySpecies, []string{})
}

func (s *Store) SaveSkySpecies(list []string) error {
	return saveSlot(s, KeySkySpecies, list)
}

// PendingDeletion returns the persisted undo buffer, nil when empty.
func (s *Store) PendingDeletion() *models.PendingDeletion {
	return loadSlot[*models.PendingDeletion](s, KeyPendingUndo, nil)
}

// SavePendingDeletion stores the undo buffer; nil clears it.
func (s *Store) SavePendingDeletion(pending *models.PendingDeletion) error {
	return saveSlot(s, KeyPendingUndo, pending)
}

func (s *Store) SubtitleIndex() int {
	index := loadSlot(s, KeySubtitle, 0)
	if index < 0 {
		return 0
	}
	return index
}

func (s *Store) SaveSubtitleIndex(index int) error {
	return saveSlot(s, KeySubtitle, index)
}
