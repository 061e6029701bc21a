package main

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const (
	boardOriginX   = 1
	boardOriginY   = 1
	cellWidth      = 2
	minOutputLines = 8
	outputWidth    = 56
)

var (
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	outputStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(outputWidth)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

var tuiKeyLines = []string{
	"Keys:",
	"  arrows / shift+arrows            Move the board cursor (shift moves 2x).",
	"  tab / left click                 Select the shape under the cursor.",
	"  ctrl+z / ctrl+y                  Undo / redo.",
	"  esc                              Clear the input line.",
	"  ctrl+c                           Quit.",
}

// model is the full-screen front end. Commands typed on the input line go
// through the same CLI as the plain loop; its output is shown beside the
// board.
type model struct {
	surface    *Surface
	cli        *CLI
	out        *bytes.Buffer
	width      int
	height     int
	cursorX    int
	cursorY    int
	mode       Mode
	helpScroll int
	input      []rune
	output     []string
	color      bool
}

func newModel(surface *Surface, config *Config, log logrus.FieldLogger) model {
	out := &bytes.Buffer{}
	return model{
		surface: surface,
		cli:     NewCLI(surface, config, out, log),
		out:     out,
		mode:    ModeCommand,
		output:  []string{"Type a command, or help for the list."},
		color:   config.Color,
	}
}

func runTUI(surface *Surface, config *Config, log logrus.FieldLogger) error {
	p := tea.NewProgram(
		newModel(surface, config, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.mode == ModeCommand && msg.Type == tea.MouseLeft {
			if x, y, ok := m.cellAt(msg.X, msg.Y); ok {
				m.cursorX, m.cursorY = x, y
				m.run(fmt.Sprintf("select %d %d", x, y))
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeHelp {
			return m.updateHelp(msg)
		}
		return m.updateCommand(msg)
	}
	return m, nil
}

func (m model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		m.input = append(m.input, msg.Runes...)
		return m, nil
	}

	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input = nil
	case "enter":
		return m.submit()
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case "tab":
		m.run(fmt.Sprintf("select %d %d", m.cursorX, m.cursorY))
	case "ctrl+z":
		m.run("undo")
	case "ctrl+y":
		m.run("redo")
	case "left", "right", "up", "down", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	default:
		if msg.Type == tea.KeySpace {
			m.input = append(m.input, ' ')
		}
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(string(m.input))
	m.input = nil
	if strings.EqualFold(line, "help") {
		m.mode = ModeHelp
		m.helpScroll = 0
		return m, nil
	}
	if m.run(line) {
		return m, tea.Quit
	}
	return m, nil
}

// run executes a command and keeps its output for the side pane.
func (m *model) run(line string) bool {
	m.out.Reset()
	quit := m.cli.Execute(line)
	if lines := splitLines(m.out.String()); len(lines) > 0 {
		m.output = lines
	}
	m.ensureCursorInBounds()
	return quit
}

func (m model) helpContent() []string {
	lines := []string{"Blackboard Help", "===============", ""}
	lines = append(lines, helpLines...)
	lines = append(lines, "")
	lines = append(lines, shapeLines...)
	lines = append(lines, "")
	lines = append(lines, tuiKeyLines...)
	lines = append(lines, "", "Press esc, q or ? to close, j/k to scroll.")
	return lines
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxScroll := len(m.helpContent()) - m.helpHeight()
	if maxScroll < 0 {
		maxScroll = 0
	}
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "?":
		m.mode = ModeCommand
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m, nil
}

func (m model) helpHeight() int {
	if m.height < 2 {
		return len(m.helpContent())
	}
	return m.height - 1
}

func (m model) helpView() string {
	lines := m.helpContent()
	start := m.helpScroll
	end := start + m.helpHeight()
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		start = end
	}
	return strings.Join(lines[start:end], "\n")
}

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	board := boardStyle.Render(m.renderBoard())
	output := outputStyle.Render(strings.Join(m.visibleOutput(), "\n"))
	top := lipgloss.JoinHorizontal(lipgloss.Top, board, output)
	input := "> " + string(m.input) + "█"
	return lipgloss.JoinVertical(lipgloss.Left, top, statusStyle.Render(m.statusLine()), input)
}

// renderBoard draws the grid two columns per cell. The selected shape is
// underlined and the cursor cell is reversed.
func (m model) renderBoard() string {
	grid := m.surface.Render()
	var selected Shape
	if id, ok := m.surface.Selected(); ok {
		selected, _ = m.surface.Lookup(id)
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, r := range row {
			style := lipgloss.NewStyle()
			if m.color {
				style = glyphStyle(ColorOf(r))
			}
			if selected != nil && r != blankCell && selected.CoversPoint(x, y) {
				style = style.Bold(true).Underline(true)
			}
			if x == m.cursorX && y == m.cursorY {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(string(r)))
			if x < len(row)-1 {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

func (m model) visibleOutput() []string {
	n := m.surface.Height()
	if n < minOutputLines {
		n = minOutputLines
	}
	if len(m.output) <= n {
		return m.output
	}
	return m.output[len(m.output)-n:]
}

func (m model) statusLine() string {
	sel := "none"
	if id, ok := m.surface.Selected(); ok {
		sel = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("cursor (%d, %d)  board %dx%d  shapes %d  selected %s  undo %d",
		m.cursorX, m.cursorY, m.surface.Width(), m.surface.Height(), m.surface.Len(), sel, m.surface.HistoryLen())
}
