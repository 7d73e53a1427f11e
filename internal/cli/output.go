package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/reoring/gltf"
)

// ── Output helpers ──────────────────────────────────────────────────────────
// Icon semantics:
//   ✓  valid
//   ✗  invalid (the issues follow, indented)
//   ⚠  warning
//   ~  neutral info

// printSection prints a top-level section header, e.g. "=== model.gltf ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

// printBullet prints a grouped-section bullet, e.g. "● Scene 0".
func printBullet(w io.Writer, title string) {
	fmt.Fprintf(w, "\n● %s\n", title)
}

// printOK prints a success line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printOK(w io.Writer, name, msg string) { printLine(w, "✓", name, msg) }

// printErr prints a failure line.
func printErr(w io.Writer, name, msg string) { printLine(w, "✗", name, msg) }

// printWarn prints a warning line.
func printWarn(w io.Writer, name, msg string) { printLine(w, "⚠", name, msg) }

// printInfo prints a neutral informational line.
func printInfo(w io.Writer, name, msg string) { printLine(w, "~", name, msg) }

func printLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// printIssues prints one indented line per issue below a failure line.
func printIssues(w io.Writer, iss gltf.Issues) {
	for _, it := range iss {
		fmt.Fprintf(w, "       %s %s: %s\n", it.Path, it.Code, it.Message)
	}
}

// issueLine formats an issue on a single line for warnings.
func issueLine(it gltf.Issue) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s: %s", it.Path, it.Code, it.Message))
}
