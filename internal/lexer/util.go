package lexer

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStartByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '\''
}

// isSymbolByte reports whether b can be part of a symbolic operator.
func isSymbolByte(b byte) bool {
	switch b {
	case '!', '#', '$', '%', '&', '*', '+', '.', '/', '<', '=', '>', '?',
		'@', '\\', '^', '|', '-', '~', ':':
		return true
	default:
		return false
	}
}
