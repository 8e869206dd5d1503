package password

import (
	"fmt"
	"strings"
)

// Character sets drawn from when generating passwords.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// CharClass is a named, fixed set of characters.
type CharClass int

const (
	// Lowercase represents the ASCII lowercase letters.
	Lowercase CharClass = iota
	// Uppercase represents the ASCII uppercase letters.
	Uppercase
	// Digits represents the decimal digits.
	Digits
	// Symbols represents the fixed punctuation set.
	Symbols
)

// CharClasses lists every class in alphabet order.
var CharClasses = []CharClass{Lowercase, Uppercase, Digits, Symbols}

var charClassSets = map[CharClass]string{
	Lowercase: LowercaseChars,
	Uppercase: UppercaseChars,
	Digits:    DigitChars,
	Symbols:   SymbolChars,
}

var charClassNames = map[CharClass]string{
	Lowercase: "lowercase",
	Uppercase: "uppercase",
	Digits:    "digits",
	Symbols:   "symbols",
}

// Chars returns the characters of the class.
func (c CharClass) Chars() string {
	return charClassSets[c]
}

// Contains reports whether r belongs to the class.
func (c CharClass) Contains(r rune) bool {
	return strings.ContainsRune(charClassSets[c], r)
}

func (c CharClass) String() string {
	if name, ok := charClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CharClass(%d)", int(c))
}
