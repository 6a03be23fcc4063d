package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/quitlog/quitlog/internal/models"
	"github.com/quitlog/quitlog/internal/storage"
	"github.com/quitlog/quitlog/internal/tracker"
)

type Context struct {
	Store   *storage.Store
	Tracker *tracker.Tracker
}

// warnPersist downgrades a failed slot write to a stderr warning: the
// in-memory operation already happened and the next reload reconciles.
// Anything else stays an error.
func warnPersist(err error) error {
	var perr *tracker.PersistError
	if errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "Warning: %v (state will reconcile on next reload)\n", perr)
		return nil
	}
	return err
}

// resolveID matches a full id or a unique prefix against a set of ids.
func resolveID(input string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no record matches id %q", input)
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", input, len(matches))
	}
}

func giveUpIDs(items []models.GiveUp) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func achievedIDs(items []models.Achieved) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatGiveUp(item models.GiveUp) string {
	pin := " "
	if item.Pinned {
		pin = "📌"
	}
	line := fmt.Sprintf("  [%s]%s %s (planned %s)", shortID(item.ID), pin, item.Title, item.PlannedAt)
	if item.Reason != "" {
		line += fmt.Sprintf("\n      because: %s", item.Reason)
	}
	return line
}

func formatAchieved(item models.Achieved) string {
	pin := " "
	if item.Pinned {
		pin = "📌"
	}
	return fmt.Sprintf("  [%s]%s %s (achieved %s)", shortID(item.ID), pin, item.Title,
		item.AchievedAt.Format("2006-01-02 15:04"))
}
