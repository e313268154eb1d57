package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/pipeline"
	"github.com/matzehuels/roguegrid/pkg/render"
	"github.com/matzehuels/roguegrid/pkg/rng"
	"github.com/matzehuels/roguegrid/pkg/session"
)

// Status styles
var (
	statusKeyStyle   = lipgloss.NewStyle().Foreground(colorGray)
	statusValueStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	statusDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	goalBannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	blockedStyle     = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Room table
// =============================================================================

// roomTable renders the rooms of d with their rectangles and markers.
func roomTable(d *dungeon.Dungeon) string {
	roles := markerRoles(d)
	rows := make([][]string, 0, len(d.Rooms))
	for _, r := range d.Rooms {
		rows = append(rows, []string{
			r.Cell.String(),
			fmt.Sprintf("%d,%d", r.X, r.Y),
			fmt.Sprintf("%dx%d", r.W, r.H),
			strconv.Itoa(d.Grid.Degree(r.Cell)),
			strings.Join(roles[r.Cell.String()], ", "),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Cell", "Origin", "Size", "Links", "Markers").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 4 && row >= 0 && row < len(rows) && rows[row][4] != "" {
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})

	return t.Render()
}

// =============================================================================
// PlayModel - Interactive dungeon walk
// =============================================================================

// PlayModel is the bubbletea model for the play command.
type PlayModel struct {
	ctx     context.Context
	runner  *pipeline.Runner
	config  dungeon.Config
	palette render.Palette

	Session *session.Session
	Last    session.Outcome
	Err     error
}

// NewPlayModel creates a play model over a started session.
func NewPlayModel(ctx context.Context, runner *pipeline.Runner, cfg dungeon.Config, sess *session.Session) PlayModel {
	return PlayModel{
		ctx:     ctx,
		runner:  runner,
		config:  cfg,
		palette: render.DefaultPalette(),
		Session: sess,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n":
		return m.restart(rng.Resolve(0)), nil
	case "r":
		return m.restart(m.Session.Dungeon().Seed), nil
	}

	dir, err := session.ParseDirection(key.String())
	if err != nil {
		return m, nil
	}
	outcome, err := m.Session.Move(m.ctx, dir)
	if err != nil {
		// Moving after the goal: wait for n, r or q.
		return m, nil
	}
	m.Last = outcome
	return m, nil
}

// restart begins a new session on seed.
func (m PlayModel) restart(seed uint64) PlayModel {
	d, err := m.runner.Generate(m.ctx, pipeline.Options{Seed: seed, Config: m.config})
	if err != nil {
		m.Err = err
		return m
	}
	m.Session = session.Start(m.ctx, d)
	m.Last = ""
	m.Err = nil
	return m
}

func (m PlayModel) View() string {
	var b strings.Builder
	state := m.Session.State()

	b.WriteString(StyleTitle.Render("roguegrid"))
	b.WriteString(statusDimStyle.Render(fmt.Sprintf("  seed %d", state.Seed)))
	b.WriteString("\n\n")

	pos := state.Pos
	b.WriteString(render.ANSI(m.Session.Canvas(), m.palette, &pos))
	b.WriteString("\n")

	treasure := "no"
	if state.HasTreasure {
		treasure = "yes"
	}
	b.WriteString(statusKeyStyle.Render("moves "))
	b.WriteString(statusValueStyle.Render(strconv.Itoa(state.Moves)))
	b.WriteString(statusKeyStyle.Render("  treasure "))
	b.WriteString(statusValueStyle.Render(treasure))
	switch {
	case m.Err != nil:
		b.WriteString("  " + blockedStyle.Render(m.Err.Error()))
	case state.Ended:
		b.WriteString("  " + goalBannerStyle.Render(iconSuccess+" you reached the goal"))
	case m.Last == session.OutcomeBlocked:
		b.WriteString("  " + blockedStyle.Render("blocked"))
	case m.Last == session.OutcomeTreasure:
		b.WriteString("  " + StyleWarning.Render("treasure found"))
	}
	b.WriteString("\n")
	b.WriteString(statusDimStyle.Render("arrows/hjkl/wasd move  n new  r restart  q quit"))
	b.WriteString("\n")

	return b.String()
}
