// Package picker provides the interactive company selector used by the
// company intel command when no company argument is given.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxVisible = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 1, 2)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 0, 0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)

	inputStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 2)
)

type model struct {
	companies []string // full list, sorted by the caller
	matches   []string // current search matches
	search    textinput.Model
	cursor    int
	chosen    string
	quit      bool
}

func newModel(companies []string) model {
	ti := textinput.New()
	ti.Placeholder = "type to search"
	ti.Prompt = "/ "
	ti.Focus()
	return model{
		companies: companies,
		matches:   companies,
		search:    ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+j":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.cursor < len(m.matches) {
				m.chosen = m.matches[m.cursor]
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.matches = filterMatches(m.companies, m.search.Value())
	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
	return m, cmd
}

func filterMatches(companies []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return companies
	}
	var out []string
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c), query) {
			out = append(out, c)
		}
	}
	return out
}

func (m model) View() string {
	s := titleStyle.Render("Company Intel — Select a company")
	s += "\n"
	s += inputStyle.Render(m.search.View()) + "\n\n"

	if len(m.matches) == 0 {
		s += itemStyle.Render("no companies match") + "\n"
	}

	start, end := window(m.cursor, len(m.matches))
	for i := start; i < end; i++ {
		if i == m.cursor {
			s += selectedStyle.Render("> "+m.matches[i]) + "\n"
		} else {
			s += itemStyle.Render(m.matches[i]) + "\n"
		}
	}
	if end < len(m.matches) {
		s += itemStyle.Render(fmt.Sprintf("… %d more", len(m.matches)-end)) + "\n"
	}

	s += hintStyle.Render("↑/↓ navigate  enter select  esc quit")
	return s
}

// window keeps the cursor visible within the bounded list view.
func window(cursor, n int) (int, int) {
	if n <= maxVisible {
		return 0, n
	}
	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > n {
		end = n
		start = end - maxVisible
	}
	return start, end
}

// Run shows an interactive company selector over the given names.
// Returns the chosen company, or "" if the user quit without choosing.
func Run(companies []string) (string, error) {
	if len(companies) == 0 {
		return "", fmt.Errorf("no companies to choose from")
	}

	p := tea.NewProgram(newModel(companies))
	result, err := p.Run()
	if err != nil {
		return "", err
	}

	final := result.(model)
	if final.quit {
		return "", nil
	}
	return final.chosen, nil
}
