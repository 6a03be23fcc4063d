// Package lock guards the store against a second quitlog process. The
// storage layer has exactly one writer by convention; the pidfile makes
// the convention enforceable.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/quitlog/quitlog/internal/constants"
	"github.com/quitlog/quitlog/internal/logger"
)

var findProcessFunc = ps.FindProcess

// Lock is a held pidfile. Release it on exit.
type Lock struct {
	path string
}

// PathFor returns the lockfile path for a given store path.
func PathFor(storePath string) string {
	return filepath.Join(filepath.Dir(storePath), constants.LockfileName)
}

// Acquire writes a pidfile next to the store. A lockfile belonging to a
// live process is an error; a stale one (dead pid, unreadable contents) is
// reclaimed.
func Acquire(storePath string) (*Lock, error) {
	path := PathFor(storePath)

	if pid, ok := readPID(path); ok {
		proc, err := findProcessFunc(pid)
		if err == nil && proc != nil {
			return nil, fmt.Errorf("another quitlog instance is running (pid %d); close it or remove %s", pid, path)
		}
		logger.Warn("reclaiming stale lockfile", "path", path, "pid", pid)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: path}, nil
}

// Release removes the pidfile.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// Holder reports the pid in an existing lockfile and whether that process
// is still alive. Used by doctor.
func Holder(storePath string) (pid int, alive bool, ok bool) {
	pid, ok = readPID(PathFor(storePath))
	if !ok {
		return 0, false, false
	}
	proc, err := findProcessFunc(pid)
	return pid, err == nil && proc != nil, true
}

func readPID(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}
