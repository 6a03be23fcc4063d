package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quitlog/quitlog/internal/badges"
	"github.com/quitlog/quitlog/internal/species"
)

var tabNames = [tabCount]string{"Give-ups", "Achieved", "Badges", "Grove"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateAdd {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.state {
	case StateGiveUps:
		b.WriteString(m.giveUpList.View())
	case StateAchieved:
		b.WriteString(subtitleStyle.Render(m.subtitle))
		b.WriteString("\n\n")
		b.WriteString(m.achievedList.View())
	case StateBadges:
		b.WriteString(m.viewBadges())
	case StateGrove:
		b.WriteString(m.viewGrove())
	}

	if m.toast != "" {
		b.WriteString("\n\n")
		b.WriteString(toastStyle.Render(m.toast))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) viewTabs() string {
	tabs := make([]string, tabCount)
	for i, name := range tabNames {
		if SessionState(i) == m.state {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewBadges() string {
	unlocked := make(map[string]bool)
	for _, id := range m.tracker.UnlockedBadgeIDs() {
		unlocked[id] = true
	}

	var b strings.Builder
	giveUps, _ := m.tracker.Totals()
	fmt.Fprintf(&b, "  %d/%d unlocked · %d give-ups so far\n\n", len(unlocked), len(badges.Catalog), giveUps)

	for _, def := range badges.Catalog {
		if unlocked[def.ID] {
			fmt.Fprintf(&b, "  🏅 %s — %s\n", unlockStyle.Render(def.Title), def.Description)
			continue
		}
		line := fmt.Sprintf("%s — %s", def.DisplayTitle(false), def.DisplayDescription(false))
		fmt.Fprintf(&b, "     %s\n", lockedStyle.Render(line))
	}
	return b.String()
}

func (m Model) viewGrove() string {
	giveUps, achieved := m.tracker.Totals()
	sea, sky := m.tracker.Species()

	var b strings.Builder
	fmt.Fprintf(&b, "  The grove has grown %dm down and %dm up.\n\n", giveUps*species.MetersPerRecord, achieved*species.MetersPerRecord)
	b.WriteString(viewSpeciesList("🌊 Abyss", sea))
	b.WriteString("\n")
	b.WriteString(viewSpeciesList("☁️ Sky", sky))
	return b.String()
}

func viewSpeciesList(label string, found []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s — %d/%d species found\n", label, len(found), species.MaxSpecies)
	for _, name := range found {
		fmt.Fprintf(&b, "    • %s\n", name)
	}
	if len(found) == 0 {
		b.WriteString(lockedStyle.Render("    nothing discovered yet") + "\n")
	}
	return b.String()
}
