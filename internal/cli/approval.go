package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/wardenlabs/warden/internal/cli/formatter"
	"github.com/wardenlabs/warden/internal/hooks"
)

// NewApprover returns the interactive terminal approver when stdin is a TTY,
// and the deny-all approver otherwise. A destructive command must never run
// just because nobody was around to say no.
func NewApprover() hooks.Approver {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return &terminalApprover{}
	}
	return hooks.DenyAllApprover{}
}

// terminalApprover prompts the operator with a huh select form.
type terminalApprover struct{}

func (terminalApprover) Approve(ctx context.Context, command string, c hooks.Classification) (hooks.Decision, error) {
	fmt.Println(formatter.Header("Approval required"))
	fmt.Printf("%s  %s\n\n", formatter.RiskIndicator(c.Risk), formatter.Bold(command))

	choice := string(hooks.DecisionDeny)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("This command is classified as destructive. Run it?").
				Options(
					huh.NewOption("Deny", string(hooks.DecisionDeny)),
					huh.NewOption("Allow once", string(hooks.DecisionAllowOnce)),
					huh.NewOption("Allow and trust for this session", string(hooks.DecisionAllowAndTrust)),
				).
				Value(&choice),
		),
	).WithTheme(wardenHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		return hooks.DecisionDeny, err
	}
	return hooks.Decision(choice), nil
}

func wardenHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
