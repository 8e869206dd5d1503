package password

import (
	"fmt"
	"strings"
)

// DefaultLength is the password length used when none is given.
const DefaultLength = 12

// Policy selects the length and the character classes of generated
// passwords.
type Policy struct {
	Length    int  `json:"length" yaml:"length"`
	Lowercase bool `json:"lowercase" yaml:"lowercase"`
	Uppercase bool `json:"uppercase" yaml:"uppercase"`
	Digits    bool `json:"digits" yaml:"digits"`
	Symbols   bool `json:"symbols" yaml:"symbols"`
}

// DefaultPolicy returns a policy of DefaultLength with letters and digits
// enabled and symbols disabled.
func DefaultPolicy() Policy {
	return Policy{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   false,
	}
}

// Enabled returns the enabled classes in alphabet order.
func (p Policy) Enabled() []CharClass {
	var classes []CharClass
	for _, c := range CharClasses {
		if p.has(c) {
			classes = append(classes, c)
		}
	}
	return classes
}

func (p Policy) has(c CharClass) bool {
	switch c {
	case Lowercase:
		return p.Lowercase
	case Uppercase:
		return p.Uppercase
	case Digits:
		return p.Digits
	case Symbols:
		return p.Symbols
	}
	return false
}

// Alphabet concatenates the characters of every enabled class. Characters
// are not de-duplicated across classes.
func (p Policy) Alphabet() string {
	var sb strings.Builder
	for _, c := range p.Enabled() {
		sb.WriteString(c.Chars())
	}
	return sb.String()
}

// Validate checks that the policy can produce a password.
func (p Policy) Validate() error {
	if p.Length < 0 {
		return fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidPolicy, p.Length)
	}
	if len(p.Enabled()) == 0 {
		return fmt.Errorf("%w: at least one character set must be enabled", ErrInvalidPolicy)
	}
	return nil
}
