// Package ui renders the interactive matcher: a prompt for the desired
// language and a live ranking of the supported tags under it.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"langtag"
)

// Picked is the selection the picker ends with. Tag is empty when the
// user quit without choosing.
type Picked struct {
	Tag      string
	Distance int
}

type rankedItem struct {
	tag      string
	display  string
	distance int
	usable   bool
}

type pickerModel struct {
	supported   []string
	maxDistance int

	input  textinput.Model
	ranked []rankedItem
	cursor int
	errMsg string
	width  int
	picked Picked
}

// NewPicker returns a Bubble Tea model ranking supported against
// whatever tag is typed at the prompt.
func NewPicker(supported []string, maxDistance int) tea.Model {
	in := textinput.New()
	in.Placeholder = "desired language, e.g. pt-BR"
	in.Prompt = "? "
	in.Focus()

	m := &pickerModel{
		supported:   supported,
		maxDistance: maxDistance,
		input:       in,
		width:       80,
	}
	m.rank("")
	return m
}

func (m *pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.picked = Picked{}
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.ranked) > 0 && m.ranked[m.cursor].usable {
				item := m.ranked[m.cursor]
				m.picked = Picked{Tag: item.tag, Distance: item.distance}
			}
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.ranked)-1 {
				m.cursor++
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.rank(m.input.Value())
	return m, cmd
}

// rank recomputes the ordering for the current prompt value. An empty
// or malformed prompt keeps the list in its given order, unranked.
func (m *pickerModel) rank(desired string) {
	m.errMsg = ""
	m.ranked = m.ranked[:0]
	m.cursor = 0

	var desiredTag *langtag.Tag
	if strings.TrimSpace(desired) != "" {
		var err error
		desiredTag, err = langtag.Parse(desired)
		if err != nil {
			m.errMsg = err.Error()
			desiredTag = nil
		}
	}

	for _, s := range m.supported {
		item := rankedItem{tag: s, display: s, usable: true}
		if supportedTag, err := langtag.Parse(s); err == nil {
			item.display = fmt.Sprintf("%s  %s", s, supportedTag.DisplayName())
			if desiredTag != nil {
				item.distance = desiredTag.Distance(supportedTag)
				item.usable = item.distance <= m.maxDistance
			}
		}
		m.ranked = append(m.ranked, item)
	}
	if desiredTag != nil {
		sort.SliceStable(m.ranked, func(i, j int) bool {
			return m.ranked[i].distance < m.ranked[j].distance
		})
	}
}

func (m *pickerModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("pick a supported language"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(truncate(m.errMsg, m.width-2)))
	}
	b.WriteString("\n")

	nameWidth := m.width - 10
	if nameWidth < 20 {
		nameWidth = 20
	}
	typed := strings.TrimSpace(m.input.Value()) != "" && m.errMsg == ""
	for i, item := range m.ranked {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := truncate(item.display, nameWidth)
		if typed {
			line = fmt.Sprintf("%s %s", styleDistance(item.distance, m.maxDistance).Render(fmt.Sprintf("%4d", item.distance)), line)
		} else {
			line = fmt.Sprintf("%s %s", dimStyle.Render("   -"), line)
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: pick   up/down: move   esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Result reports the selection after the program has finished.
func (m *pickerModel) Result() Picked { return m.picked }

func styleDistance(distance, maxDistance int) lipgloss.Style {
	switch {
	case distance == 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case distance <= maxDistance:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
