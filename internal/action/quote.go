package action

import (
	"path/filepath"
	"strings"
)

// Quote wraps s in single quotes for sh, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// expandHome replaces a leading "~" path element with home. The value is
// quoted afterwards, so the shell no longer sees the tilde.
func expandHome(s, home string) string {
	if home == "" {
		return s
	}
	if s == "~" {
		return home
	}
	if strings.HasPrefix(s, "~/") {
		return filepath.Join(home, s[2:])
	}
	return s
}
