package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"sigs.k8s.io/yaml"
)

// stdout is where command output goes (for testing injection).
var stdout io.Writer = os.Stdout

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
)

func isInteractiveTTY() bool {
	if stdout != os.Stdout {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func render(style lipgloss.Style, s string) string {
	if !isInteractiveTTY() {
		return s
	}
	return style.Render(s)
}

// printDone reports a completed step, e.g. "✓ deployment api created".
func printDone(format string, args ...any) {
	fmt.Fprintf(stdout, "%s %s\n", render(okStyle, "✓"), fmt.Sprintf(format, args...))
}

// printNotFound reports an absent resource. It is not an error.
func printNotFound(kind, namespace, name string) {
	target := name
	if namespace != "" {
		target = namespace + "/" + name
	}
	fmt.Fprintln(stdout, render(warnStyle, fmt.Sprintf("%s %s not found", kind, target)))
}

// printTitle prints a bold heading.
func printTitle(s string) {
	fmt.Fprintln(stdout, render(titleStyle, s))
}

// printField prints an aligned key/value line below a title.
func printField(name, value string) {
	fmt.Fprintf(stdout, "  %s  %s\n", render(nameStyle, fmt.Sprintf("%-12s", name)), value)
}

// printYAML renders obj the way kubectl -o yaml does.
func printYAML(obj any) error {
	out, err := yaml.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = stdout.Write(out)
	return err
}
