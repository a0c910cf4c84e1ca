package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parkops/lotmap/pkg/permit"
)

func promptFixture(t *testing.T) promptModel {
	t.Helper()
	g, err := permit.BuildRows([]permit.Row{
		{Permit: "Gold", Lots: "Lot A, Lot B"},
		{Permit: "Silver", Lots: "Lot B"},
	})
	if err != nil {
		t.Fatalf("BuildRows: %v", err)
	}
	return newPromptModel(g)
}

func typeString(m promptModel, s string) promptModel {
	for _, r := range s {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(promptModel)
	}
	return m
}

func pressEnter(m promptModel) promptModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(promptModel)
}

func TestPromptQueryByPermit(t *testing.T) {
	m := promptFixture(t)
	m = pressEnter(typeString(m, "Gold"))

	if m.errMsg != "" {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
	if len(m.results) != 2 || m.results[0] != "Lot A" || m.results[1] != "Lot B" {
		t.Errorf("results = %v", m.results)
	}
	if m.input != "" {
		t.Errorf("input should reset after enter, got %q", m.input)
	}
	if !strings.Contains(m.View(), "Lot A") {
		t.Error("view should show results")
	}
}

func TestPromptTabSwitchesDirection(t *testing.T) {
	m := promptFixture(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(promptModel)

	m = pressEnter(typeString(m, "Lot B"))
	if len(m.results) != 2 || m.results[0] != "Gold" || m.results[1] != "Silver" {
		t.Errorf("results = %v", m.results)
	}
}

func TestPromptNotFoundKeepsLoop(t *testing.T) {
	m := promptFixture(t)
	m = pressEnter(typeString(m, "Platinum"))

	if m.errMsg == "" {
		t.Fatal("expected a not-found message")
	}
	if !strings.Contains(m.View(), "not found") {
		t.Errorf("view = %q, want not-found message", m.View())
	}

	// The prompt recovers: a follow-up valid query works.
	m = pressEnter(typeString(m, "Gold"))
	if m.errMsg != "" || len(m.results) != 2 {
		t.Errorf("recovery query failed: err=%q results=%v", m.errMsg, m.results)
	}
}

func TestPromptBackspace(t *testing.T) {
	m := promptFixture(t)
	m = typeString(m, "Goldx")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(promptModel)
	if m.input != "Gold" {
		t.Errorf("input = %q, want Gold", m.input)
	}
}

func TestPromptQuit(t *testing.T) {
	m := promptFixture(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
}

func TestPromptEmptyEnterIsNoop(t *testing.T) {
	m := promptFixture(t)
	m = pressEnter(m)
	if m.ran {
		t.Error("enter on empty input should not run a query")
	}
}
