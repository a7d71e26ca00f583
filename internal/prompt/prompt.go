// Package prompt asks the user for commit metadata on the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// Prompter is the interactive surface a commit session talks to.
type Prompter interface {
	// Confirm asks a yes/no question; the default answer is no.
	Confirm(question string) (bool, error)
	// Select offers a closed list of items with items[cursor] highlighted
	// and returns the index of the chosen item.
	Select(title string, items []string, cursor int) (int, error)
	// Input asks for free text pre-filled with initial. Empty answers are valid.
	Input(label, initial string) (string, error)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	typeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	projectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	messageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// WriteHeader prints the commit template the three prompts fill in.
func WriteHeader(w io.Writer) {
	fmt.Fprintln(w, headingStyle.Render("Format your commit message:"))
	fmt.Fprintf(w, "%s(%s): %s\n\n",
		typeStyle.Render("type"),
		projectStyle.Render("project"),
		messageStyle.Render("message"))
}

// parseYesNo interprets a Confirm answer. ok is false for anything that is
// neither yes nor no; an empty answer means no.
func parseYesNo(answer string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, true
	case "", "n", "no":
		return false, true
	}
	return false, false
}
