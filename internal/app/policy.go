package app

import (
	"strings"

	"go.trai.ch/zerr"
)

// CleanPolicy decides whether the outputs of a failed rule are removed.
type CleanPolicy int

const (
	// CleanAsk asks the user, keeping the outputs when nobody can answer.
	CleanAsk CleanPolicy = iota
	// CleanAlways removes the outputs without asking.
	CleanAlways
	// CleanNever keeps the outputs.
	CleanNever
)

// String returns the flag spelling of the policy.
func (p CleanPolicy) String() string {
	switch p {
	case CleanAlways:
		return "always"
	case CleanNever:
		return "never"
	default:
		return "ask"
	}
}

// ParseCleanPolicy parses "ask", "always" or "never".
func ParseCleanPolicy(s string) (CleanPolicy, error) {
	switch strings.ToLower(s) {
	case "ask", "":
		return CleanAsk, nil
	case "always":
		return CleanAlways, nil
	case "never":
		return CleanNever, nil
	default:
		return CleanAsk, zerr.With(zerr.New("invalid clean-on-failure policy"), "value", s)
	}
}
