package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type jsonFile struct {
	Version int                        `json:"version"`
	Slots   map[string]json.RawMessage `json:"slots"`
}

// JSONBackend keeps every slot in a single pretty-printed JSON file. Each
// Set rewrites the whole file, which is fine at this data size and keeps
// the store greppable.
type JSONBackend struct {
	path string
	file *jsonFile
}

func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{
		path: path,
	}
}

func (b *JSONBackend) Init() error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(b.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", b.path)
	}

	b.file = &jsonFile{
		Version: 1,
		Slots:   make(map[string]json.RawMessage),
	}

	return b.save()
}

func (b *JSONBackend) Load() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'quitlog init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	b.file = &jsonFile{}
	if err := json.Unmarshal(data, b.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if b.file.Slots == nil {
		b.file.Slots = make(map[string]json.RawMessage)
	}

	return nil
}

func (b *JSONBackend) Close() error {
	return nil
}

func (b *JSONBackend) save() error {
	data, err := json.MarshalIndent(b.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(b.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (b *JSONBackend) Get(key string) ([]byte, bool, error) {
	if b.file == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	raw, ok := b.file.Slots[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (b *JSONBackend) Set(key string, value []byte) error {
	if b.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	b.file.Slots[key] = json.RawMessage(value)
	return b.save()
}

func (b *JSONBackend) GetConfigPath() string {
	return b.path
}
