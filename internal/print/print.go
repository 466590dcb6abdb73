// internal/print/print.go
package print

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status prompts shown before command lines and messages.
const (
	PromptCanceled = "Canceled"
	PromptPending  = "Pending"
	PromptRunning  = "Running"
	PromptInfo     = "Info"
	PromptError    = "Error"
)

// promptIndent right-aligns every prompt so command lines stay columnar.
const promptIndent = 9

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cmdStyle = lipgloss.NewStyle().Bold(true)
	dimStyle = lipgloss.NewStyle().Faint(true)
)

// Printer writes status-prefixed lines for the engine. Out and Err default
// to discarding when nil, which keeps tests quiet.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func pad(prompt string) string {
	if n := promptIndent - lipgloss.Width(prompt); n > 0 {
		return strings.Repeat(" ", n) + prompt
	}
	return prompt
}

// Cmd prints a command line after the given prompt, quoted the way a user
// would paste it into a shell.
func (p *Printer) Cmd(prompt string, argv []string) {
	if p.Out == nil {
		return
	}
	fmt.Fprintf(p.Out, "%s %s\n", okStyle.Render(pad(prompt)), cmdStyle.Render("`"+strings.Join(argv, " ")+"`"))
}

// Msg prints a message after the given prompt.
func (p *Printer) Msg(prompt, msg string) {
	if p.Out == nil {
		return
	}
	fmt.Fprintf(p.Out, "%s %s\n", okStyle.Render(pad(prompt)), msg)
}

// Error prints an error after the Error prompt on the error stream.
func (p *Printer) Error(err error) {
	if p.Err == nil {
		return
	}
	fmt.Fprintf(p.Err, "%s %s\n", errStyle.Render(pad(PromptError)), err)
}

// Dim prints a de-emphasized informational line, used for skipped steps.
func (p *Printer) Dim(prompt, msg string) {
	if p.Out == nil {
		return
	}
	fmt.Fprintf(p.Out, "%s %s\n", okStyle.Render(pad(prompt)), dimStyle.Render(msg))
}
