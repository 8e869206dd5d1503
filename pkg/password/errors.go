package password

import "errors"

var (
	// ErrInvalidPolicy is returned when a policy cannot produce a password.
	ErrInvalidPolicy = errors.New("invalid password policy")

	// ErrInvalidCost is returned when a bcrypt cost is out of range.
	ErrInvalidCost = errors.New("invalid bcrypt cost")
)
