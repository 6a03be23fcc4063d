// Package records is the list component shared by the give-up and
// achieved tabs. It emits messages; the parent model owns the tracker.
package records

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quitlog/quitlog/internal/models"
)

type Kind int

const (
	KindGiveUps Kind = iota
	KindAchieved
)

type AddMsg struct{}

type PinMsg struct {
	Kind Kind
	ID   string
}

type PromoteMsg struct {
	ID string
}

type DeleteMsg struct {
	Kind Kind
	ID   string
}

type Item struct {
	ID     string
	Name   string
	Detail string
	Pinned bool
}

func (i Item) Title() string {
	if i.Pinned {
		return "📌 " + i.Name
	}
	return i.Name
}

func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string { return i.Name }

type KeyMap struct {
	Add    key.Binding
	Pin    key.Binding
	Done   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin"),
		),
		Done: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "did it anyway"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	kind Kind
}

func New(kind Kind, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	extra := []key.Binding{keys.Pin, keys.Delete}
	if kind == KindGiveUps {
		extra = append([]key.Binding{keys.Add, keys.Done}, extra...)
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }

	return Model{
		list: l,
		keys: keys,
		kind: kind,
	}
}

func (m *Model) SetGiveUps(items []models.GiveUp) {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = Item{
			ID:     item.ID,
			Name:   item.Title,
			Detail: "planned " + item.PlannedAt,
			Pinned: item.Pinned,
		}
	}
	m.list.SetItems(listItems)
}

func (m *Model) SetAchieved(items []models.Achieved) {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = Item{
			ID:     item.ID,
			Name:   item.Title,
			Detail: fmt.Sprintf("achieved %s", item.AchievedAt.Format("2006-01-02 15:04")),
			Pinned: item.Pinned,
		}
	}
	m.list.SetItems(listItems)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			if m.kind == KindGiveUps {
				return m, func() tea.Msg { return AddMsg{} }
			}
		case key.Matches(msg, m.keys.Pin):
			if i, ok := m.list.SelectedItem().(Item); ok {
				kind := m.kind
				return m, func() tea.Msg { return PinMsg{Kind: kind, ID: i.ID} }
			}
		case key.Matches(msg, m.keys.Done):
			if i, ok := m.list.SelectedItem().(Item); ok && m.kind == KindGiveUps {
				return m, func() tea.Msg { return PromoteMsg{ID: i.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				kind := m.kind
				return m, func() tea.Msg { return DeleteMsg{Kind: kind, ID: i.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		if m.kind == KindGiveUps {
			return "\n  Nothing given up yet.\n  Press 'a' to let something go."
		}
		return "\n  No diligence on record.\n  Mark a give-up done with 'm' when you relapse into effort."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
