package abilities

import (
	"time"

	"github.com/xreatlabs/headsteal/internal/domain/head"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
	"github.com/xreatlabs/headsteal/internal/services/ability"
)

type entry struct {
	desc head.AbilityDescriptor
	impl ability.Ability
}

func builtin() []entry {
	return []entry{
		{
			desc: head.AbilityDescriptor{Type: "speed_burst", DisplayName: "Speed Burst", CooldownSeconds: 15, UsableInCombat: true},
			impl: NewSelfEffect("speed_burst", shared.EffectSpeed, 10*time.Second, 1),
		},
		{
			desc: head.AbilityDescriptor{Type: "strength_surge", DisplayName: "Strength Surge", CooldownSeconds: 20, UsableInCombat: true},
			impl: NewSelfEffect("strength_surge", shared.EffectStrength, 8*time.Second, 0),
		},
		{
			desc: head.AbilityDescriptor{Type: "regeneration_field", DisplayName: "Regeneration Field", CooldownSeconds: 30},
			impl: NewSelfEffect("regeneration_field", shared.EffectRegen, 5*time.Second, 1),
		},
		{
			desc: head.AbilityDescriptor{Type: "wither_touch", DisplayName: "Wither Touch", CooldownSeconds: 25, UsableInCombat: true, Range: 16},
			impl: NewTargetEffect("wither_touch", shared.EffectWither, 6*time.Second, 1),
		},
		{
			desc: head.AbilityDescriptor{Type: "blinding_curse", DisplayName: "Blinding Curse", CooldownSeconds: 20, UsableInCombat: true, Range: 16},
			impl: NewTargetEffect("blinding_curse", shared.EffectBlindness, 5*time.Second, 0),
		},
		{
			desc: head.AbilityDescriptor{Type: "spawn_escape", DisplayName: "Spawn Escape", CooldownSeconds: 120},
			impl: &SpawnEscape{},
		},
		// Boss sub-abilities; cooldowns never apply to these but the
		// descriptors still document intent
		{
			desc: head.AbilityDescriptor{Type: "wither_storm", DisplayName: "Wither Storm", UsableInCombat: true, Range: 24},
			impl: NewTargetEffect("wither_storm", shared.EffectWither, 8*time.Second, 2),
		},
		{
			desc: head.AbilityDescriptor{Type: "sonic_boom", DisplayName: "Sonic Boom", UsableInCombat: true, Range: 24},
			impl: NewTargetEffect("sonic_boom", shared.EffectNausea, 6*time.Second, 1),
		},
	}
}

// RegisterAll installs every built-in ability into the registry
func RegisterAll(r *ability.Registry) error {
	for _, e := range builtin() {
		if err := r.Register(e.desc, e.impl); err != nil {
			return err
		}
	}
	return nil
}
