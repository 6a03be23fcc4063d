package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/quitlog/quitlog/internal/tracker"
	"github.com/quitlog/quitlog/internal/tui/components/records"
)

type toastExpiredMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.giveUpList.SetSize(msg.Width-4, msg.Height-6)
		m.achievedList.SetSize(msg.Width-4, msg.Height-6)

	case toastExpiredMsg:
		if !m.toastDeadline.IsZero() && time.Now().After(m.toastDeadline) {
			m.toast = ""
			m.toastDeadline = time.Time{}
		}

	case records.AddMsg:
		m.addForm = &AddFormModel{}
		m.form = newAddForm(m.addForm)
		m.state = StateAdd
		return m, m.form.Init()

	case records.PinMsg:
		var err error
		if msg.Kind == records.KindGiveUps {
			err = m.tracker.TogglePin(msg.ID)
		} else {
			err = m.tracker.ToggleAchievedPin(msg.ID)
		}
		m.notePersist(err)
		m.refreshLists()

	case records.PromoteMsg:
		if err := m.tracker.Promote(msg.ID); !errors.Is(err, tracker.ErrNotFound) {
			m.notePersist(err)
			m.refreshLists()
			subtitle, _ := m.tracker.AdvanceSubtitle()
			m.subtitle = subtitle
		}

	case records.DeleteMsg:
		if msg.Kind == records.KindGiveUps {
			removed, err := m.tracker.Delete(msg.ID)
			if errors.Is(err, tracker.ErrNotFound) {
				break
			}
			m.notePersist(err)
			m.refreshLists()
			if pending, ok := m.tracker.PendingDeletion(); ok {
				m.toast = fmt.Sprintf("Deleted %q — press u to undo", removed.Title)
				m.toastDeadline = pending.ExpiresAt
				return m, tea.Tick(time.Until(pending.ExpiresAt), func(time.Time) tea.Msg {
					return toastExpiredMsg{}
				})
			}
		} else {
			_, err := m.tracker.DeleteAchieved(msg.ID)
			if !errors.Is(err, tracker.ErrNotFound) {
				m.notePersist(err)
				m.refreshLists()
			}
		}

	case tea.KeyMsg:
		if m.state == StateAdd {
			return m.updateAddForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.setState((m.state + 1) % tabCount)
		case key.Matches(msg, m.keys.ShiftTab):
			m.setState((m.state - 1 + tabCount) % tabCount)
		case key.Matches(msg, m.keys.Undo):
			item, err := m.tracker.Undo()
			switch {
			case errors.Is(err, tracker.ErrNothingToUndo):
				// ignore
			case errors.Is(err, tracker.ErrUndoExpired):
				m.flash("Too late; that one is gone.")
			default:
				m.notePersist(err)
				m.refreshLists()
				m.flash(fmt.Sprintf("Restored %q", item.Title))
			}
		}
	}

	return m.updateActiveComponent(msg)
}

func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateGiveUps
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		result, err := m.tracker.Add(tracker.AddInput{
			Title:     m.addForm.Title,
			Reason:    m.addForm.Reason,
			PlannedAt: m.addForm.PlannedAt,
		})
		if errors.Is(err, tracker.ErrEmptyTitle) {
			// Stay on the form; the user has to write something first.
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.notePersist(err)
		m.refreshLists()
		m.state = StateGiveUps
		if len(result.NewlyUnlocked) > 0 {
			m.flash(unlockStyle.Render(fmt.Sprintf("🏅 Badge unlocked: %s", result.NewlyUnlocked[0].Title)))
		}
	case huh.StateAborted:
		m.state = StateGiveUps
	}

	return m, cmd
}

func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateGiveUps:
		m.giveUpList, cmd = m.giveUpList.Update(msg)
	case StateAchieved:
		m.achievedList, cmd = m.achievedList.Update(msg)
	}
	return m, cmd
}

func (m *Model) setState(next SessionState) {
	if next == StateAchieved && m.state != StateAchieved {
		subtitle, _ := m.tracker.AdvanceSubtitle()
		m.subtitle = subtitle
	}
	m.state = next
}

// flash shows a short-lived status line.
func (m *Model) flash(text string) {
	m.toast = text
	m.toastDeadline = time.Now().Add(5 * time.Second)
}

// notePersist surfaces a failed slot write without interrupting the
// session; memory is ahead of storage until the next reload.
func (m *Model) notePersist(err error) {
	var perr *tracker.PersistError
	if errors.As(err, &perr) {
		m.flash(toastStyle.Render("save failed: " + perr.Error()))
	}
}
