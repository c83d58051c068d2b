package cli

import (
	"strings"
	"unicode"
)

// JoinArgs rejoins the tokens after the verb with single spaces. Keys and
// values are recovered from this string only, never from the original
// token boundaries.
func JoinArgs(args []string) string {
	return strings.Join(args, " ")
}

// SplitFirstWord splits s at its first whitespace run. key is everything
// before it; rest is the remainder with leading whitespace removed. With no
// whitespace, key is all of s and rest is empty.
func SplitFirstWord(s string) (key, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
