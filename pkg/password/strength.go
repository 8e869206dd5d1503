package password

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

// MaxScore is the highest score Analyze can award.
const MaxScore = 7

const (
	strongLength = 12
	fairLength   = 8

	// minDiversity is the ratio of distinct to total characters that must
	// be exceeded to earn the diversity point.
	minDiversity = 0.7
)

// Feedback messages, one per unmet criterion.
const (
	FeedbackTooShort  = "Password is too short (recommend at least 12 characters)"
	FeedbackLowercase = "Add lowercase letters"
	FeedbackUppercase = "Add uppercase letters"
	FeedbackDigits    = "Add numbers"
	FeedbackSymbols   = "Add special characters for better security"
	FeedbackDiversity = "Use more diverse characters"
)

// Strength is the qualitative label of a score.
type Strength string

const (
	Weak   Strength = "Weak"
	Fair   Strength = "Fair"
	Good   Strength = "Good"
	Strong Strength = "Strong"
)

// StrengthForScore maps a score onto its label.
func StrengthForScore(score int) Strength {
	switch {
	case score <= 2:
		return Weak
	case score <= 4:
		return Fair
	case score == 5:
		return Good
	default:
		return Strong
	}
}

// Report is the result of analysing a password.
type Report struct {
	Label    Strength `json:"label" yaml:"label"`
	Score    int      `json:"score" yaml:"score"`
	Feedback []string `json:"feedback" yaml:"feedback"`
	Length   int      `json:"length" yaml:"length"`
}

// Analyze scores password against a fixed rubric. It accepts any input,
// including the empty string.
func Analyze(password string) Report {
	var (
		score    int
		feedback = []string{}
		length   = utf8.RuneCountInString(password)
	)

	switch {
	case length >= strongLength:
		score += 2
	case length >= fairLength:
		score++
	default:
		feedback = append(feedback, FeedbackTooShort)
	}

	checks := []struct {
		class    CharClass
		feedback string
	}{
		{Lowercase, FeedbackLowercase},
		{Uppercase, FeedbackUppercase},
		{Digits, FeedbackDigits},
		{Symbols, FeedbackSymbols},
	}
	for _, check := range checks {
		if containsClass(password, check.class) {
			score++
		} else {
			feedback = append(feedback, check.feedback)
		}
	}

	if diversity(password, length) > minDiversity {
		score++
	} else {
		feedback = append(feedback, FeedbackDiversity)
	}

	return Report{
		Label:    StrengthForScore(score),
		Score:    score,
		Feedback: feedback,
		Length:   length,
	}
}

func containsClass(s string, c CharClass) bool {
	for _, r := range s {
		if c.Contains(r) {
			return true
		}
	}
	return false
}

// diversity is the ratio of distinct characters to length; zero for the
// empty string.
func diversity(s string, length int) float64 {
	if length == 0 {
		return 0
	}
	distinct := len(lo.Uniq([]rune(s)))
	return float64(distinct) / float64(length)
}
