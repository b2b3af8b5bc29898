// FILE: lixenwraith/cliconf/usage.go
package cliconf

import (
	"fmt"
	"strings"
)

// flagSpec is the resolved flag surface of a field
type flagSpec struct {
	name      string
	short     string
	help      string
	valueName string
	takesVal  bool
}

// usageSpec is a parsed usage grammar string
type usageSpec struct {
	short      string
	long       string
	valueName  string
	help       string
	takesValue bool
	multiple   bool
}

// parseUsage reads the compact flag grammar:
//
//	[-s, ]--long[=[VALUE]|=<VALUE>| [VALUE]| <VALUE>][...] ['help text']
func parseUsage(s string) (usageSpec, error) {
	var u usageSpec
	src := strings.TrimSpace(s)

	if open := strings.IndexByte(src, '\''); open >= 0 {
		end := strings.LastIndexByte(src, '\'')
		if end == open {
			return u, fmt.Errorf("unterminated help text in usage %q", s)
		}
		if rest := strings.TrimSpace(src[end+1:]); rest != "" {
			return u, fmt.Errorf("unexpected %q after help text in usage %q", rest, s)
		}
		u.help = src[open+1 : end]
		src = strings.TrimSpace(src[:open])
	}

	for _, tok := range strings.Fields(src) {
		switch {
		case strings.HasPrefix(tok, "--"):
			if u.long != "" {
				return u, fmt.Errorf("usage %q declares more than one long flag", s)
			}
			name, placeholder, hasValue := strings.Cut(strings.TrimPrefix(tok, "--"), "=")
			if !isFlagName(name) {
				return u, fmt.Errorf("invalid long flag %q in usage %q", name, s)
			}
			u.long = name
			if hasValue {
				if err := u.setPlaceholder(placeholder); err != nil {
					return u, fmt.Errorf("usage %q: %w", s, err)
				}
			}

		case tok == "...":
			u.multiple = true

		case strings.HasPrefix(tok, "-"):
			short := strings.TrimSuffix(strings.TrimPrefix(tok, "-"), ",")
			if len(short) != 1 || !isFlagName(short) {
				return u, fmt.Errorf("invalid short flag %q in usage %q", tok, s)
			}
			if u.short != "" {
				return u, fmt.Errorf("usage %q declares more than one short flag", s)
			}
			u.short = short

		case strings.HasPrefix(tok, "[") || strings.HasPrefix(tok, "<"):
			if u.long == "" {
				return u, fmt.Errorf("value placeholder %q before the flag in usage %q", tok, s)
			}
			if err := u.setPlaceholder(tok); err != nil {
				return u, fmt.Errorf("usage %q: %w", s, err)
			}

		default:
			return u, fmt.Errorf("unexpected token %q in usage %q", tok, s)
		}
	}

	if u.long == "" {
		return u, fmt.Errorf("usage %q declares no long flag", s)
	}
	return u, nil
}

// setPlaceholder records a [VALUE] or <VALUE> placeholder, with optional ... suffix
func (u *usageSpec) setPlaceholder(tok string) error {
	if u.takesValue {
		return fmt.Errorf("more than one value placeholder")
	}
	if trimmed, ok := strings.CutSuffix(tok, "..."); ok {
		u.multiple = true
		tok = trimmed
	}
	var inner string
	switch {
	case strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
		inner = tok[1 : len(tok)-1]
	case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
		inner = tok[1 : len(tok)-1]
	default:
		return fmt.Errorf("malformed value placeholder %q", tok)
	}
	if inner == "" {
		return fmt.Errorf("empty value placeholder %q", tok)
	}
	u.valueName = inner
	u.takesValue = true
	return nil
}

// helpText marks the value name with backquotes so pflag shows it as the placeholder
func (u usageSpec) helpText() string {
	if u.valueName == "" || !strings.Contains(u.help, u.valueName) {
		return u.help
	}
	return strings.Replace(u.help, u.valueName, "`"+u.valueName+"`", 1)
}

// isFlagName checks flag names are ASCII letters, digits and dashes
func isFlagName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '-') {
			return false
		}
	}
	return true
}
