// File: vrsarin/argmap/helper.go
package argmap

import "strings"

// tokenize splits s on any of the delimiter characters, dropping empty
// tokens, the way a list-valued setting ("a, b c") is interpreted.
func tokenize(s, delims string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}

// foldByte lowercases a single ASCII byte.
func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// ciLess is an ASCII case-fold string comparison. It is deliberately
// locale-independent so include-file ordering is identical across
// environments.
func ciLess(a, b string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := foldByte(a[i]), foldByte(b[i])
		if ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}

// hasSuffixFold reports whether s ends with suffix, ASCII case-insensitively.
func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// stripLeadingSpace removes leading spaces and tabs, but leaves a value
// consisting only of whitespace untouched.
func stripLeadingSpace(s string) string {
	pos := strings.IndexFunc(s, func(r rune) bool {
		return r != ' ' && r != '\t'
	})
	if pos > 0 {
		return s[pos:]
	}
	return s
}
