package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/quitlog/quitlog/internal/tracker"
	"github.com/quitlog/quitlog/internal/tui/components/records"
)

type SessionState int

const (
	StateGiveUps SessionState = iota
	StateAchieved
	StateBadges
	StateGrove
	StateAdd
)

// tabCount is how many states cycle on tab; StateAdd is modal.
const tabCount = 4

type AddFormModel struct {
	Title     string
	Reason    string
	PlannedAt string
}

type Model struct {
	tracker       *tracker.Tracker
	state         SessionState
	keys          KeyMap
	help          help.Model
	giveUpList    records.Model
	achievedList  records.Model
	form          *huh.Form
	addForm       *AddFormModel
	subtitle      string
	toast         string
	toastDeadline time.Time
	quitting      bool
	width         int
	height        int
}

// NewModel assumes the tracker has already been reloaded.
func NewModel(t *tracker.Tracker) Model {
	gl := records.New(records.KindGiveUps, 0, 0)
	gl.SetGiveUps(t.GiveUps())
	al := records.New(records.KindAchieved, 0, 0)
	al.SetAchieved(t.Achieved())

	return Model{
		tracker:      t,
		state:        StateGiveUps,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		giveUpList:   gl,
		achievedList: al,
		subtitle:     t.Subtitle(),
	}
}

func newAddForm(m *AddFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you giving up on?").
				Value(&m.Title),
			huh.NewInput().
				Title("Why? (optional)").
				Value(&m.Reason),
			huh.NewInput().
				Title("When was it planned for? (optional)").
				Value(&m.PlannedAt),
		),
	)
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Undo, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Undo},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshLists() {
	m.giveUpList.SetGiveUps(m.tracker.GiveUps())
	m.achievedList.SetAchieved(m.tracker.Achieved())
}
