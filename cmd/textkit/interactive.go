package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/textkit/dedent"
	"github.com/wippyai/textkit/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

type opMode int

const (
	modeDedent opMode = iota
	modeQuote
	modeJoin
	modeCount
)

func (m opMode) String() string {
	switch m {
	case modeDedent:
		return "dedent"
	case modeQuote:
		return "quote"
	case modeJoin:
		return "join"
	default:
		return "unknown"
	}
}

type playgroundModel struct {
	input    textarea.Model
	mode     opMode
	tabWidth int
}

func newPlaygroundModel(tabWidth int) *playgroundModel {
	ta := textarea.New()
	ta.Placeholder = "Paste or type a text block..."
	ta.SetWidth(60)
	ta.SetHeight(8)
	ta.Focus()
	return &playgroundModel{
		input:    ta,
		tabWidth: tabWidth,
	}
}

func (m *playgroundModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+t":
			m.mode = (m.mode + 1) % modeCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// transform runs the selected operation over the current input.
func (m *playgroundModel) transform() (string, error) {
	text := m.input.Value()
	switch m.mode {
	case modeDedent:
		target := dedent.MinIndent(text, m.tabWidth)
		return dedent.Unindent(text, target, m.tabWidth), nil
	case modeQuote:
		return render.Repr(text)
	case modeJoin:
		var items []any
		for _, line := range strings.Split(text, "\n") {
			if line != "" {
				items = append(items, line)
			}
		}
		return render.JoinString(items, ", ", " and ")
	default:
		return "", fmt.Errorf("unknown mode %d", m.mode)
	}
}

func (m *playgroundModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("textkit playground"))
	b.WriteString(" mode: ")
	b.WriteString(modeStyle.Render(m.mode.String()))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	out, err := m.transform()
	if err != nil {
		b.WriteString(paneStyle.Render(errorStyle.Render(fmt.Sprintf("Error: %v", err))))
	} else {
		b.WriteString(paneStyle.Render(resultStyle.Render(out)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+t switch mode • esc quit"))

	return b.String()
}

func runInteractive(tabWidth int) error {
	p := tea.NewProgram(newPlaygroundModel(tabWidth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
