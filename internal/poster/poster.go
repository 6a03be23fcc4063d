// Package poster renders the shareable text posters. The original app
// captured screenshots to the photo library; here the render is plain
// styled text the CLI writes wherever it is told to.
package poster

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/quitlog/quitlog/internal/badges"
	"github.com/quitlog/quitlog/internal/models"
	"github.com/quitlog/quitlog/internal/species"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	badgeStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			MarginRight(1)

	tierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

var iconGlyphs = map[badges.Icon]string{
	badges.IconCoffee:   "☕",
	badges.IconAward:    "🏅",
	badges.IconCloud:    "☁",
	badges.IconFeather:  "𓂃",
	badges.IconSun:      "☀",
	badges.IconAnchor:   "⚓",
	badges.IconShield:   "🛡",
	badges.IconStar:     "★",
	badges.IconZap:      "⚡",
	badges.IconAperture: "◉",
	badges.IconMoon:     "☾",
	badges.IconTriangle: "▲",
	badges.IconHexagon:  "⬡",
	badges.IconLayers:   "≡",
}

func header(title string, profile models.Profile, when time.Time) string {
	lines := []string{titleStyle.Render(title)}
	if profile.ShowOnPoster && profile.Nickname != "" {
		lines = append(lines, subtitleStyle.Render("for "+profile.Nickname))
	}
	lines = append(lines, subtitleStyle.Render(when.Format("2006-01-02 15:04")))
	return strings.Join(lines, "\n")
}

// Badges renders the unlocked badge wall, three to a row.
func Badges(unlocked []badges.Definition, profile models.Profile, when time.Time) string {
	var rows []string
	var row []string
	for _, def := range unlocked {
		card := badgeStyle.Render(fmt.Sprintf("%s %s\n%s", iconGlyphs[def.Icon], def.Title, tierStyle.Render(string(def.Tier))))
		row = append(row, card)
		if len(row) == 3 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	body := strings.Join(rows, "\n")
	footer := subtitleStyle.Render(fmt.Sprintf("%d of %d badges unlocked", len(unlocked), len(badges.Catalog)))
	return frameStyle.Render(header("Badge Wall", profile, when) + "\n\n" + body + "\n\n" + footer)
}

func progressBar(count, max, width int) string {
	if count > max {
		count = max
	}
	filled := count * width / max
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Species renders the sea/sky discovery progress.
func Species(seaCount, skyCount int, profile models.Profile, when time.Time) string {
	sea := fmt.Sprintf("deep sea  %s %3d/%d", progressBar(seaCount, species.MaxSpecies, 25), seaCount, species.MaxSpecies)
	sky := fmt.Sprintf("open sky  %s %3d/%d", progressBar(skyCount, species.MaxSpecies, 25), skyCount, species.MaxSpecies)
	footer := subtitleStyle.Render("every give-up grows the tree a little")
	return frameStyle.Render(header("Twin Tree Discoveries", profile, when) + "\n\n" + sea + "\n" + sky + "\n\n" + footer)
}
