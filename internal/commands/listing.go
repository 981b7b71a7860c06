package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hay-kot/pathux/pkgs/dirent"
	"github.com/hay-kot/pathux/pkgs/styles"
)

// compileExpr compiles a filter expression once for reuse
func compileExpr(code string) (*vm.Program, error) {
	if code == "" {
		code = "true" // default: match everything
	}

	program, err := expr.Compile(code, expr.Env(entryEnv(dirent.Entry{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

// evalCompiledExpr evaluates a pre-compiled expression with given context
func evalCompiledExpr(program *vm.Program, env map[string]any) (bool, error) {
	output, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}

	// expr.AsBool() ensures output is always bool
	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("expression did not evaluate to boolean, got %T", output)
	}

	return result, nil
}

// entryEnv is the set of variables a filter expression can reference.
func entryEnv(e dirent.Entry) map[string]any {
	return map[string]any{
		"name":    e.Name(),
		"path":    e.Path(),
		"dir":     e.IsDir(),
		"file":    e.IsFile(),
		"symlink": e.IsSymlink(),
	}
}

func filterEntries(program *vm.Program, entries []dirent.Entry) ([]dirent.Entry, error) {
	matched := make([]dirent.Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := evalCompiledExpr(program, entryEnv(e))
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate filter for %s: %w", e.Name(), err)
		}
		if ok {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// decorate renders an entry name the way ls -F does, styled by entry type.
func decorate(e dirent.Entry) string {
	switch {
	case e.IsDir():
		return styles.Dir(e.Name() + "/")
	case e.IsSymlink():
		return styles.Link(e.Name() + "@")
	default:
		return e.Name()
	}
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorDir)).Bold(true)
	bracketStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorAccent))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorAccent))
)

// createStyledHeader creates a styled header line for a listing
func createStyledHeader(label, name string, terminalWidth int) string {
	leftPart := fmt.Sprintf("%s %s%s%s %s ",
		dividerStyle.Render("--"),
		bracketStyle.Render("["),
		labelStyle.Render(label),
		bracketStyle.Render("]"),
		nameStyle.Render(name),
	)

	// Visible length excluding ANSI codes: "-- [LABEL] name "
	visibleLength := lipgloss.Width(leftPart)

	remainingSpace := max(terminalWidth-visibleLength, 0)

	divider := dividerStyle.Render(strings.Repeat("-", remainingSpace))
	return leftPart + divider
}
