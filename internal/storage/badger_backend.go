package storage

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBackend stores slots in an embedded BadgerDB directory. The slot
// model maps directly onto Badger's key/value API; each Set is a single
// synchronous transaction.
type BadgerBackend struct {
	path     string
	inMemory bool
	db       *badger.DB
}

func NewBadgerBackend(path string) *BadgerBackend {
	return &BadgerBackend{
		path: path,
	}
}

// NewInMemoryBadgerBackend is used by tests; nothing touches disk.
func NewInMemoryBadgerBackend() *BadgerBackend {
	return &BadgerBackend{
		inMemory: true,
	}
}

func (b *BadgerBackend) open() error {
	var opts badger.Options
	if b.inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(b.path).WithSyncWrites(true)
	}
	// Badger's default logger is chatty on stderr; keep it quiet.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open badger store: %w", err)
	}
	b.db = db
	return nil
}

func (b *BadgerBackend) Init() error {
	if b.inMemory {
		return b.open()
	}

	if _, err := os.Stat(b.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", b.path)
	}

	if err := os.MkdirAll(b.path, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	return b.open()
}

func (b *BadgerBackend) Load() error {
	if b.db != nil {
		return nil
	}

	if !b.inMemory {
		if _, err := os.Stat(b.path); os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'quitlog init' first")
		}
	}

	return b.open()
}

func (b *BadgerBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *BadgerBackend) Get(key string) ([]byte, bool, error) {
	if b.db == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, true, nil
}

func (b *BadgerBackend) Set(key string, value []byte) error {
	if b.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (b *BadgerBackend) GetConfigPath() string {
	return b.path
}
