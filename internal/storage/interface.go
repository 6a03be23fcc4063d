package storage

import (
	"path/filepath"
	"strings"
)

// Slot keys. Every persisted collection lives in exactly one named slot;
// backends provide per-slot writes only, never cross-slot atomicity.
const (
	KeyGiveUps       = "giveups"
	KeyAchieved      = "achieved"
	KeyBadges        = "badges"
	KeyGiveUpTotal   = "giveups_total"
	KeyAchievedTotal = "achieved_total"
	KeyProfile       = "profile"
	KeySeaSpecies    = "sea_species"
	KeySkySpecies    = "sky_species"
	KeySubtitle      = "achieved_subtitle"
	KeyPendingUndo   = "pending_undo"
)

// Backend is a string-keyed store of opaque serialized values.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Slots
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error

	// Utils
	GetConfigPath() string
}

// ForPath picks a backend from the store path: .json files use the JSON
// backend, paths without an extension are treated as Badger directories,
// everything else is SQLite.
func ForPath(path string) Backend {
	switch {
	case strings.EqualFold(filepath.Ext(path), ".json"):
		return NewJSONBackend(path)
	case filepath.Ext(path) == "":
		return NewBadgerBackend(path)
	default:
		return NewSQLiteBackend(path)
	}
}
