package lexer

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentContinue(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

func foldLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return string(out)
}

// isBaseSpecifier reports whether a folded identifier spelling introduces
// a bit string literal when followed by a double quote.
func isBaseSpecifier(folded string) bool {
	switch folded {
	case "b", "o", "x", "d", "ub", "uo", "ux", "sb", "so", "sx":
		return true
	default:
		return false
	}
}
