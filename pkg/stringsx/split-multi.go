package stringsx

import "strings"

// SplitMulti slices s into the substrings separated by any of seps.  When
// several separators match at the same position the first one listed wins.
// A trailing separator does not produce a trailing empty string.
func SplitMulti(s string, seps []string) []string {
	out := make([]string, 0, 8)

	var i int
	for j := 0; j < len(s); j++ {
		if n := sepAt(s[j:], seps); n > 0 {
			out = append(out, s[i:j])
			j += n - 1
			i = j + 1
		}
	}
	if i < len(s) {
		out = append(out, s[i:])
	}

	return out
}

func sepAt(s string, seps []string) int {
	for _, sep := range seps {
		if sep != "" && strings.HasPrefix(s, sep) {
			return len(sep)
		}
	}
	return 0
}

// Lines splits s on "\r\n" and "\n".
func Lines(s string) []string {
	return SplitMulti(s, []string{"\r\n", "\n"})
}
