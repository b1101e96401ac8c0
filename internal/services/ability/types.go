package ability

import (
	"context"
	"time"

	"github.com/xreatlabs/headsteal/internal/domain/head"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
	"github.com/xreatlabs/headsteal/internal/interfaces"
)

// Service is the ability execution engine entry point
type Service interface {
	// Execute resolves and runs the ability bound to a head for one
	// triggering interaction
	Execute(ctx context.Context, input *ExecuteInput) (*ExecuteResult, error)

	// ClearPlayer drops all per-player tracking state (disconnect hygiene)
	ClearPlayer(playerID string)

	// InFlight reports how many executions currently hold a governor slot
	InFlight() int
}

// Outcome classifies the result of an execution attempt. Only
// OutcomeInternalError indicates a bug.
type Outcome string

const (
	OutcomeExecuted       Outcome = "executed"
	OutcomeHeadUnknown    Outcome = "head_unknown"
	OutcomeAbilityUnknown Outcome = "ability_unknown"
	OutcomeOnCooldown     Outcome = "on_cooldown"
	OutcomeBusy           Outcome = "server_busy"
	OutcomeNoPermission   Outcome = "no_permission"
	OutcomeNoMatch        Outcome = "no_match"
	OutcomeInvalidTarget  Outcome = "invalid_target"
	OutcomeFailed         Outcome = "failed"
	OutcomeInternalError  Outcome = "internal_error"
)

// ErrInvalidTarget is returned by ability implementations when the
// interaction has no usable target. It maps to OutcomeInvalidTarget and
// charges no cooldown.
var ErrInvalidTarget = apperrors.InvalidArgument("no valid target")

// ExecuteInput describes one triggering interaction
type ExecuteInput struct {
	PlayerID string
	HeadKey  string
	Trigger  shared.TriggerKind
	TargetID string // For targeted abilities (may be empty)
}

// ExecuteResult is what the dispatch loop uses to decide whether to suppress
// the host engine's default behavior for the interaction
type ExecuteResult struct {
	Outcome  Outcome
	Consumed bool

	// Remaining is set for OutcomeOnCooldown
	Remaining time.Duration
}

// Invocation is the context passed to an ability implementation
type Invocation struct {
	PlayerID string
	Trigger  shared.TriggerKind
	TargetID string
	Params   head.Params
	World    interfaces.WorldAPI
}

// Ability is one executable ability implementation. Execute returns false
// for a soft no-op (e.g. no valid target); an error is treated as a bug and
// converted to OutcomeInternalError at the service boundary.
type Ability interface {
	Key() string
	Execute(ctx context.Context, inv *Invocation) (bool, error)
}

// Effects is an optional interface abilities implement to get stock
// sound/particle feedback played for them on success
type Effects interface {
	Sound() string
	Particle() (name string, count int)
}
