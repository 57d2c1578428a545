// Package tui is the terminal presentation of the submission form. It only
// reads transfer state and forwards key presses to pair operations.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/ruminaider/panseq-form/internal/form"
)

// Run shows the form until the user submits or quits. It returns nil when
// the user quit without submitting.
func Run(s *commands.Session) (*form.Submission, error) {
	final, err := tea.NewProgram(NewModel(s), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result, nil
}
