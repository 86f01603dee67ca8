package lexer

import (
	"unicode"
	"unicode/utf8"
)

// ===== Классификаторы =====

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isSpaceRune(r rune) bool {
	if r < utf8.RuneSelf {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return false
	}
	return unicode.IsSpace(r)
}

// ASCII fast-path для идентификаторов; Unicode через unicode.Is*.
// Начало: буква в смысле свойства Alphabetic (L*, Nl, Other_Alphabetic) или '_'.
func isIdentStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	}
	return r != utf8.RuneError && isAlphabetic(r)
}

// Продолжение: Alphabetic, любые Unicode-цифры (Nd, Nl, No) или '_'.
func isIdentContinueRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStartRune(r) || isDec(byte(r))
	}
	return r != utf8.RuneError && (isAlphabetic(r) || unicode.IsNumber(r))
}

func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}
