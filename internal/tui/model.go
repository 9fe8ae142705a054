// Package tui implements the interactive terminal driver on Bubble Tea.
//
// The model is a small phase machine: species choice, name entry, the
// play loop, and the game-over screen. All simulation state lives in
// the session; the model holds presentation state only.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cory-johannsen/petsim/internal/config"
	"github.com/cory-johannsen/petsim/internal/game/command"
	"github.com/cory-johannsen/petsim/internal/game/pet"
	"github.com/cory-johannsen/petsim/internal/game/session"
)

type phase int

const (
	phaseSpecies phase = iota
	phaseName
	phasePlay
	phaseOver
)

// maxNameLen bounds typed pet names so the status panel stays tidy.
const maxNameLen = 24

// resumeMsg ends the cosmetic pause that follows an applied turn.
type resumeMsg struct{}

// menuItem binds a menu label to the input line it submits.
type menuItem struct {
	label string
	input string
}

var menuItems = []menuItem{
	{"Feed", "feed"},
	{"Play", "play"},
	{"Sleep", "sleep"},
	{"Wait", "wait"},
	{"Equip Armor (+30 HP)", "equip armor"},
	{"Equip Amulet (+15 Happiness/turn)", "equip amulet"},
	{"Quit", "quit"},
}

var speciesChoices = []pet.Species{pet.SpeciesCat, pet.SpeciesDragon}

// Model drives one interactive game.
type Model struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *command.Registry

	phase         phase
	speciesChoice int
	nameInput     []rune
	sess          *session.Session
	menuChoice    int
	messages      []string
	busy          bool
}

// New builds the initial model. The species cursor starts on the
// configured default species.
func New(cfg config.Config, logger *zap.Logger) Model {
	m := Model{
		cfg:      cfg,
		logger:   logger,
		registry: command.DefaultRegistry(),
		phase:    phaseSpecies,
	}
	if cfg.Game.Species() == pet.SpeciesDragon {
		m.speciesChoice = 1
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case resumeMsg:
		m.busy = false
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The pause after a turn swallows everything except quitting.
	if m.busy {
		if key.String() == "q" {
			m.sess.Quit()
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.phase {
	case phaseSpecies:
		return m.handleSpeciesKey(key)
	case phaseName:
		return m.handleNameKey(key)
	case phasePlay:
		return m.handlePlayKey(key)
	case phaseOver:
		switch key.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleSpeciesKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.speciesChoice > 0 {
			m.speciesChoice--
		}
	case "down", "j":
		if m.speciesChoice < len(speciesChoices)-1 {
			m.speciesChoice++
		}
	case "1":
		m.speciesChoice = 0
	case "2":
		m.speciesChoice = 1
	case "enter", " ":
		m.phase = phaseName
	}
	return m, nil
}

func (m Model) handleNameKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		return m.startGame()
	case tea.KeyEsc:
		m.phase = phaseSpecies
	case tea.KeyBackspace:
		if len(m.nameInput) > 0 {
			m.nameInput = m.nameInput[:len(m.nameInput)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.nameInput = append(m.nameInput, key.Runes...)
		if len(m.nameInput) > maxNameLen {
			m.nameInput = m.nameInput[:maxNameLen]
		}
	}
	return m, nil
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(string(m.nameInput))
	if name == "" {
		name = m.cfg.Game.DefaultPetName
	}
	species := speciesChoices[m.speciesChoice]

	p := pet.NewBuilder().Species(species).Name(name).Build()
	m.sess = session.New(p, m.logger)
	m.messages = []string{fmt.Sprintf("%s %s %s has been created!",
		species.Emoji(), species.DisplayName(), p.Name())}
	m.menuChoice = 0
	m.phase = phasePlay
	if m.sess.End() == session.EndDeath {
		m.phase = phaseOver
	}
	return m, nil
}

func (m Model) handlePlayKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.menuChoice > 0 {
			m.menuChoice--
		}
		return m, nil
	case "down", "j":
		if m.menuChoice < len(menuItems)-1 {
			m.menuChoice++
		}
		return m, nil
	case "enter", " ":
		return m.runCommand(menuItems[m.menuChoice].input)
	}

	if key.Type == tea.KeyRunes && len(key.Runes) == 1 {
		// Number keys jump straight to the matching menu entry.
		if n := int(key.Runes[0] - '0'); n >= 1 && n <= len(menuItems) {
			return m.runCommand(menuItems[n-1].input)
		}
		// Everything else goes through the registry, so command aliases
		// double as hotkeys (f, p, z, w, q, ...).
		if _, ok := m.registry.Resolve(key.String()); ok {
			return m.runCommand(key.String())
		}
	}
	return m, nil
}

func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	res := command.Execute(m.registry, m.sess, input)
	m.messages = res.Lines
	m.logger.Debug("ui command dispatched",
		zap.String("session_id", m.sess.ID()),
		zap.String("input", input),
		zap.Bool("took_turn", res.TookTurn),
	)

	switch m.sess.End() {
	case session.EndQuit:
		return m, tea.Quit
	case session.EndDeath:
		m.phase = phaseOver
		return m, nil
	}

	if res.TookTurn && m.cfg.Game.TurnDelay > 0 {
		m.busy = true
		return m, tea.Tick(m.cfg.Game.TurnDelay, func(time.Time) tea.Msg {
			return resumeMsg{}
		})
	}
	return m, nil
}
