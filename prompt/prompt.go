// Package prompt asks the user for the output directory of a channel export.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts the prompt with Esc or Ctrl+C.
var ErrCancelled = errors.New("prompt: cancelled")

var (
	questionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	channelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// Success renders a status line in the success color.
func Success(s string) string { return successStyle.Render(s) }

// Failure renders a status line in the error color.
func Failure(s string) string { return errorStyle.Render(s) }

// Model is the Bubble Tea model for the directory prompt.
type Model struct {
	channel   string
	textInput textinput.Model

	value     string
	cancelled bool
	// empty is set after Enter on a blank answer
	empty bool
}

// NewModel creates a prompt for the given channel title.
func NewModel(channelTitle string) Model {
	ti := textinput.New()
	ti.Placeholder = "output directory"
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 60

	return Model{
		channel:   channelTitle,
		textInput: ti,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses. Enter on a non-blank answer quits with the
// trimmed value; a blank answer keeps the prompt open.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			v := strings.TrimSpace(m.textInput.Value())
			if v == "" {
				m.empty = true
				return m, nil
			}
			m.value = v
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.empty = false
	return m, cmd
}

// View renders the prompt.
func (m Model) View() string {
	if m.value != "" || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render("Enter the directory name to save files for the channel "))
	b.WriteString(channelStyle.Render("'" + m.channel + "'"))
	b.WriteString(questionStyle.Render(":"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	if m.empty {
		b.WriteString(hintStyle.Render("A directory name is required."))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter: confirm • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the accepted answer, or "" if none was accepted.
func (m Model) Value() string { return m.value }

// Cancelled reports whether the user aborted the prompt.
func (m Model) Cancelled() bool { return m.cancelled }

// AskDirectory runs the prompt on in/out and returns the trimmed directory
// name. A nil in reads from the terminal.
func AskDirectory(ctx context.Context, channelTitle string, in io.Reader, out io.Writer) (string, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(NewModel(channelTitle), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("prompt: unexpected model %T", final)
	}
	if m.cancelled {
		return "", ErrCancelled
	}
	if m.value == "" {
		// input closed before an answer was given
		return "", fmt.Errorf("prompt: %w", io.ErrUnexpectedEOF)
	}
	return m.value, nil
}
