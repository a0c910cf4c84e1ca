package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/parkops/lotmap/pkg/permit"
)

// Prompt styles.
var (
	promptTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	promptDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptInputStyle  = lipgloss.NewStyle().Bold(true)
)

// newPromptCmd creates the prompt command: an interactive query loop.
func newPromptCmd() *cobra.Command {
	var graphPath string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Query the graph interactively",
		Long: `Prompt starts an interactive loop: type a permit or lot identifier and
press enter to see what it maps to. Tab switches the query direction
(permit→lots or lot→permits); an unknown identifier is reported and the
prompt stays open. Esc or ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(graphPath)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newPromptModel(g)).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "graph.json", "graph document produced by 'lotmap build'")
	return cmd
}

// promptModel is the bubbletea model for the interactive query loop.
type promptModel struct {
	graph   *permit.Graph
	mode    permit.Kind // kind of the identifier being typed
	input   string
	query   string   // last executed query
	results []string // last query results
	errMsg  string   // last query failure, if any
	ran     bool     // whether any query has run yet
}

func newPromptModel(g *permit.Graph) promptModel {
	return promptModel{graph: g, mode: permit.KindPermit}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		if m.mode == permit.KindPermit {
			m.mode = permit.KindLot
		} else {
			m.mode = permit.KindPermit
		}
		return m, nil
	case tea.KeyBackspace:
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeyEnter:
		return m.runQuery(), nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(key.Runes)
		return m, nil
	}
	return m, nil
}

// runQuery executes the typed identifier against the graph and records the
// outcome. Not-found is shown inline and the loop keeps going - queries
// never corrupt the graph, so there is nothing to recover.
func (m promptModel) runQuery() promptModel {
	id := strings.TrimSpace(m.input)
	if id == "" {
		return m
	}
	m.query = id
	m.input = ""
	m.ran = true

	var results []string
	var err error
	if m.mode == permit.KindPermit {
		results, err = m.graph.SearchByPermit(id)
	} else {
		results, err = m.graph.SearchByLot(id)
	}
	if err != nil {
		m.results = nil
		m.errMsg = err.Error()
		return m
	}
	m.results = results
	m.errMsg = ""
	return m
}

func (m promptModel) View() string {
	var b strings.Builder

	b.WriteString(promptTitleStyle.Render("lotmap query"))
	b.WriteString("\n")
	b.WriteString(promptDimStyle.Render("tab: switch direction  enter: search  esc: quit"))
	b.WriteString("\n\n")

	direction := "permit → lots"
	if m.mode == permit.KindLot {
		direction = "lot → permits"
	}
	fmt.Fprintf(&b, "%s %s\n", promptDimStyle.Render("["+direction+"]"),
		promptInputStyle.Render(m.input+"▌"))

	if !m.ran {
		return b.String()
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(promptErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
		return b.String()
	}
	if len(m.results) == 0 {
		fmt.Fprintf(&b, "%s\n", promptDimStyle.Render(fmt.Sprintf("%q has no matches", m.query)))
		return b.String()
	}

	header := "Lot"
	if m.mode == permit.KindLot {
		header = "Permit"
	}
	rows := make([][]string, len(m.results))
	for i, r := range m.results {
		rows[i] = []string{r}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(promptDimStyle).
		Headers(header).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return promptTitleStyle
			}
			return promptResultStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", promptDimStyle.Render(fmt.Sprintf("  %d result(s) for %q", len(m.results), m.query)))

	return b.String()
}
