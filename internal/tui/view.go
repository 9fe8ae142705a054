package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cory-johannsen/petsim/internal/game/pet"
)

// barWidth is the number of cells in a stat gauge.
const barWidth = 10

var styles = struct {
	title   lipgloss.Style
	label   lipgloss.Style
	bar     lipgloss.Style
	panel   lipgloss.Style
	menuBox lipgloss.Style
	cursor  lipgloss.Style
	message lipgloss.Style
	danger  lipgloss.Style
	help    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C3C7D1")),

	bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")),

	panel: lipgloss.NewStyle().
		Padding(0, 1),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	cursor: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")),

	message: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD773")),

	danger: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF5F87")),

	help: lipgloss.NewStyle().
		Faint(true),
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.phase {
	case phaseSpecies:
		return m.speciesView()
	case phaseName:
		return m.nameView()
	case phaseOver:
		return m.overView()
	default:
		return m.playView()
	}
}

func (m Model) speciesView() string {
	var items []string
	for i, s := range speciesChoices {
		cursor := " "
		if m.speciesChoice == i {
			cursor = ">"
		}
		items = append(items, fmt.Sprintf("%s %d. %s %s (%s)",
			cursor, i+1, s.Emoji(), s.DisplayName(), s.Blurb()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.title.Render("🎮 WELCOME TO VIRTUAL PET SIMULATOR 🎮"),
		"",
		styles.label.Render("🐾 Choose your pet:"),
		styles.menuBox.Render(strings.Join(items, "\n")),
		"",
		styles.help.Render("Use arrows to move • enter to select • q to quit"),
	)
}

func (m Model) nameView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.title.Render("🎮 WELCOME TO VIRTUAL PET SIMULATOR 🎮"),
		"",
		styles.label.Render("📝 Enter pet name:"),
		styles.panel.Render(string(m.nameInput)+"▌"),
		"",
		styles.help.Render(fmt.Sprintf("enter to confirm (blank for %q) • esc to go back", m.cfg.Game.DefaultPetName)),
	)
}

func (m Model) playView() string {
	p := m.sess.Pet()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.title.Render(fmt.Sprintf("%s %s", p.Species().Emoji(), p.Name())),
		styles.help.Render(fmt.Sprintf("Turn %d", m.sess.Turn())),
	)

	stats := []string{
		statLine("Health", p.Health(), p.MaxHealth()),
		statLine("Energy", p.Energy(), pet.AttrCap),
		statLine("Hunger", p.Hunger(), pet.AttrCap),
		statLine("Happiness", p.Happiness(), pet.AttrCap),
		styles.label.Render(fmt.Sprintf("%-11s%s %s", "State:", p.State().Emoji(), p.State().DisplayName())),
	}
	for _, item := range p.Items() {
		stats = append(stats, styles.label.Render(item.Kind.BonusLine()))
	}

	var menuLines []string
	for i, item := range menuItems {
		if m.menuChoice == i {
			menuLines = append(menuLines, styles.cursor.Render(fmt.Sprintf("> %d. %s", i+1, item.label)))
		} else {
			menuLines = append(menuLines, fmt.Sprintf("  %d. %s", i+1, item.label))
		}
	}

	sections := []string{
		header,
		"",
		styles.panel.Render(strings.Join(stats, "\n")),
	}
	if len(m.messages) > 0 {
		sections = append(sections, "", styles.message.Render(strings.Join(m.messages, "\n")))
	}
	sections = append(sections,
		"",
		styles.menuBox.Render(strings.Join(menuLines, "\n")),
		"",
		styles.help.Render("Use arrows to move • enter to select • f/p/z/w hotkeys • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) overView() string {
	name := m.sess.Pet().Name()

	sections := []string{
		styles.title.Render("💀 " + name + " 💀"),
		"",
	}
	if len(m.messages) > 0 {
		sections = append(sections, styles.message.Render(strings.Join(m.messages, "\n")), "")
	}
	sections = append(sections,
		styles.danger.Render(fmt.Sprintf("Game Over! %s has died.", name)),
		"",
		styles.help.Render("Press q to exit"),
	)

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func statLine(label string, value, max int) string {
	return styles.label.Render(fmt.Sprintf("%-11s", label+":")) +
		"[" + styles.bar.Render(statBar(value, max)) + "]" +
		fmt.Sprintf(" %3d/%d", value, max)
}

// statBar renders value as a fixed-width gauge, clamped to the bar.
func statBar(value, max int) string {
	filled := 0
	if max > 0 {
		filled = value * barWidth / max
	}
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
