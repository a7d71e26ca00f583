package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterh/liner"
)

// Terminal is the Prompter used on a real TTY. Text prompts are line-edited
// with liner; the selection menu is a bubbletea program drawn on Out.
type Terminal struct {
	Out io.Writer
}

// NewTerminal draws menus on out, or stderr when out is nil.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stderr
	}
	return &Terminal{Out: out}
}

func (t *Terminal) Confirm(question string) (bool, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		answer, err := line.Prompt(question + " [y/N] ")
		if err != nil {
			return false, lineErr(err)
		}
		if yes, ok := parseYesNo(answer); ok {
			return yes, nil
		}
		fmt.Fprintln(t.Out, "Please answer y or n.")
	}
}

func (t *Terminal) Select(title string, items []string, cursor int) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("select %s: no items", title)
	}

	final, err := tea.NewProgram(newSelectModel(title, items, cursor), tea.WithOutput(t.Out)).Run()
	if err != nil {
		return -1, fmt.Errorf("select %s: %w", title, err)
	}
	m := final.(selectModel)
	if m.aborted || m.choice < 0 {
		return -1, ErrAborted
	}

	fmt.Fprintf(t.Out, "%s: %s\n", typeStyle.Render(title), answerStyle.Render(items[m.choice]))
	return m.choice, nil
}

func (t *Terminal) Input(label, initial string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	answer, err := line.PromptWithSuggestion(label+": ", initial, -1)
	if err != nil {
		return "", lineErr(err)
	}
	return answer, nil
}

func lineErr(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return fmt.Errorf("read input: %w", err)
}
