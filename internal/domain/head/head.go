// Package head defines the collectible head metadata that binds an item to
// an ability. Heads are owned by the catalog collaborator; this package only
// models them.
package head

import (
	"github.com/xreatlabs/headsteal/internal/domain/shared"
)

// AbilityDescriptor identifies an ability type and its usage limits.
// Descriptors are immutable once registered.
type AbilityDescriptor struct {
	// Type is the unique ability type id, e.g. "arrow_spread"
	Type string

	// DisplayName is shown to players in feedback messages
	DisplayName string

	// CooldownSeconds between uses; 0 means unlimited use
	CooldownSeconds int

	// UsableInCombat permits activation while the player is in combat
	UsableInCombat bool

	// Range is an optional numeric limit in blocks; 0 means unlimited
	Range float64
}

// AbilityRef binds a regular head to a single ability type
type AbilityRef struct {
	Type       string
	Activation shared.TriggerKind
	Params     Params
}

// BossAbility is one trigger-bound sub-ability of a boss head
type BossAbility struct {
	Type    string
	Name    string
	Trigger shared.TriggerKind
	Params  Params
}

// HeadData is the catalog metadata for one head key
type HeadData struct {
	Key           string
	DisplayName   string
	Boss          bool
	Ability       *AbilityRef
	BossAbilities []BossAbility
}

// HasAbility reports whether the head binds a regular ability
func (h *HeadData) HasAbility() bool {
	return h.Ability != nil
}

// HasBossAbilities reports whether the head carries trigger-bound sub-abilities
func (h *HeadData) HasBossAbilities() bool {
	return h.Boss && len(h.BossAbilities) > 0
}

// BossAbilityFor returns the sub-ability bound to the given trigger, if any
func (h *HeadData) BossAbilityFor(trigger shared.TriggerKind) (BossAbility, bool) {
	for _, ba := range h.BossAbilities {
		if ba.Trigger == trigger {
			return ba, true
		}
	}
	return BossAbility{}, false
}
