package schema

// Name checks are explicit character-class predicates rather than regular
// expressions so the accepted grammar is auditable at a glance.

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// IsIdentifier reports whether name is a valid generated-language identifier:
// a letter or underscore followed by letters, digits or underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	if !isAlpha(name[0]) && name[0] != '_' {
		return false
	}
	for i := 1; i < len(name); i++ {
		ch := name[i]
		if !isAlpha(ch) && !isDigit(ch) && ch != '_' {
			return false
		}
	}
	return true
}

// IsPropertyName reports whether name is a valid API name or storage key:
// non-empty, alphanumerics plus underscore, hyphen and dot.
func IsPropertyName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if !isAlpha(ch) && !isDigit(ch) && ch != '_' && ch != '-' && ch != '.' {
			return false
		}
	}
	return true
}
