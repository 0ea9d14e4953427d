package ports

import (
	"time"

	"go.trai.ch/snake/internal/core/domain"
)

// Renderer presents plans and progress to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderRules prints a numbered listing of rules.
	RenderRules(rules []*domain.Rule)
	// RenderPlan prints the rules that will run, in order.
	RenderPlan(rules []*domain.Rule)
	// OnRuleStart reports that rule is about to run. When verbose, its script is shown.
	OnRuleStart(rule *domain.Rule, verbose bool)
	// OnRuleComplete reports the outcome of rule.
	OnRuleComplete(rule *domain.Rule, status domain.RunStatus, elapsed time.Duration)
	// RenderFailure prints the failing command and its captured standard error.
	RenderFailure(err *domain.ExecutionError)
	// Message prints a plain line.
	Message(msg string)
}
