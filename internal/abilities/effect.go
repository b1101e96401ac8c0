// Package abilities holds the built-in ability implementations bound to head
// keys by the catalog. Each is a small, stateless actor over the world API;
// per-head tuning arrives through invocation params.
package abilities

import (
	"context"
	"time"

	"github.com/xreatlabs/headsteal/internal/domain/shared"
	"github.com/xreatlabs/headsteal/internal/services/ability"
)

// Params understood by the effect abilities
const (
	ParamDurationSeconds = "duration_seconds"
	ParamAmplifier       = "amplifier"
)

// SelfEffect applies a status effect to the user
type SelfEffect struct {
	key       string
	effect    shared.EffectType
	duration  time.Duration
	amplifier int
	sound     string
	particle  string
}

// NewSelfEffect creates a self-targeted effect ability
func NewSelfEffect(key string, effect shared.EffectType, duration time.Duration, amplifier int) *SelfEffect {
	return &SelfEffect{
		key:       key,
		effect:    effect,
		duration:  duration,
		amplifier: amplifier,
		sound:     "entity.illusioner.cast_spell",
		particle:  "witch",
	}
}

func (a *SelfEffect) Key() string { return a.key }

func (a *SelfEffect) Execute(ctx context.Context, inv *ability.Invocation) (bool, error) {
	duration, amplifier := effectTuning(inv, a.duration, a.amplifier)
	if err := inv.World.ApplyEffect(inv.PlayerID, a.effect, duration, amplifier); err != nil {
		return false, err
	}
	return true, nil
}

func (a *SelfEffect) Sound() string { return a.sound }

func (a *SelfEffect) Particle() (string, int) { return a.particle, 20 }

// TargetEffect applies a status effect to the interaction target. It needs
// an online target or the use does not count.
type TargetEffect struct {
	key       string
	effect    shared.EffectType
	duration  time.Duration
	amplifier int
	sound     string
	particle  string
}

// NewTargetEffect creates a target-directed effect ability
func NewTargetEffect(key string, effect shared.EffectType, duration time.Duration, amplifier int) *TargetEffect {
	return &TargetEffect{
		key:       key,
		effect:    effect,
		duration:  duration,
		amplifier: amplifier,
		sound:     "entity.evoker.cast_spell",
		particle:  "smoke",
	}
}

func (a *TargetEffect) Key() string { return a.key }

func (a *TargetEffect) Execute(ctx context.Context, inv *ability.Invocation) (bool, error) {
	if inv.TargetID == "" || inv.TargetID == inv.PlayerID || !inv.World.IsOnline(inv.TargetID) {
		return false, ability.ErrInvalidTarget
	}
	duration, amplifier := effectTuning(inv, a.duration, a.amplifier)
	if err := inv.World.ApplyEffect(inv.TargetID, a.effect, duration, amplifier); err != nil {
		return false, err
	}
	return true, nil
}

func (a *TargetEffect) Sound() string { return a.sound }

func (a *TargetEffect) Particle() (string, int) { return a.particle, 15 }

func effectTuning(inv *ability.Invocation, duration time.Duration, amplifier int) (time.Duration, int) {
	seconds := inv.Params.Int(ParamDurationSeconds, int(duration/time.Second))
	return time.Duration(seconds) * time.Second, inv.Params.Int(ParamAmplifier, amplifier)
}
