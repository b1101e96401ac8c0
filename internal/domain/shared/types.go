package shared

// TriggerKind is the normalized interaction kind delivered by the host engine
type TriggerKind string

const (
	TriggerLeftClick       TriggerKind = "left_click"
	TriggerRightClick      TriggerKind = "right_click"
	TriggerShiftLeftClick  TriggerKind = "shift_left_click"
	TriggerShiftRightClick TriggerKind = "shift_right_click"
	TriggerPassive         TriggerKind = "passive"
)

// GameMode is the host engine's interaction mode for a player
type GameMode string

const (
	GameModeSurvival  GameMode = "survival"
	GameModeCreative  GameMode = "creative"
	GameModeAdventure GameMode = "adventure"
	GameModeSpectator GameMode = "spectator"
)

// BypassesBanBox reports whether the mode exempts a player from ban box entry
func (m GameMode) BypassesBanBox() bool {
	return m == GameModeCreative || m == GameModeSpectator
}

// EffectType identifies a stock status effect in the host engine
type EffectType string

const (
	EffectPoison    EffectType = "poison"
	EffectWither    EffectType = "wither"
	EffectSlowness  EffectType = "slowness"
	EffectWeakness  EffectType = "weakness"
	EffectHunger    EffectType = "hunger"
	EffectBlindness EffectType = "blindness"
	EffectNausea    EffectType = "nausea"
	EffectSpeed     EffectType = "speed"
	EffectStrength  EffectType = "strength"
	EffectRegen     EffectType = "regeneration"
)

// DebuffEffects lists the effect types stripped on revival
func DebuffEffects() []EffectType {
	return []EffectType{
		EffectPoison,
		EffectWither,
		EffectSlowness,
		EffectWeakness,
		EffectHunger,
		EffectBlindness,
		EffectNausea,
	}
}
