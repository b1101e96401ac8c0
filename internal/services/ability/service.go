package ability

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/xreatlabs/headsteal/internal/domain/head"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
	"github.com/xreatlabs/headsteal/internal/interfaces"
)

// Permission nodes checked before execution
const (
	PermissionUse  = "headsteal.ability.use"
	PermissionBoss = "headsteal.ability.boss"
)

type service struct {
	catalog   interfaces.HeadCatalog
	world     interfaces.WorldAPI
	registry  *Registry
	cooldowns *CooldownTracker
	combos    *ComboTracker
	governor  *Governor
	sounds    bool
	particles bool

	mu        sync.Mutex
	executing map[string]bool
}

// ServiceConfig holds the dependencies of the ability service
type ServiceConfig struct {
	Catalog   interfaces.HeadCatalog
	World     interfaces.WorldAPI
	Registry  *Registry
	Cooldowns *CooldownTracker
	Combos    *ComboTracker
	Governor  *Governor

	SoundsEnabled    bool
	ParticlesEnabled bool
}

// NewService creates a new ability service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ability.ServiceConfig cannot be nil")
	}
	if cfg.Catalog == nil {
		panic("head catalog cannot be nil")
	}
	if cfg.World == nil {
		panic("world API cannot be nil")
	}

	svc := &service{
		catalog:   cfg.Catalog,
		world:     cfg.World,
		registry:  cfg.Registry,
		cooldowns: cfg.Cooldowns,
		combos:    cfg.Combos,
		governor:  cfg.Governor,
		sounds:    cfg.SoundsEnabled,
		particles: cfg.ParticlesEnabled,
		executing: make(map[string]bool),
	}
	if svc.registry == nil {
		svc.registry = NewRegistry()
	}
	if svc.cooldowns == nil {
		svc.cooldowns = NewCooldownTracker(nil)
	}
	if svc.combos == nil {
		svc.combos = NewComboTracker(nil)
	}
	if svc.governor == nil {
		svc.governor = NewGovernor(10)
	}
	return svc
}

func (s *service) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteResult, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("execute input is required")
	}
	if input.PlayerID == "" {
		return nil, apperrors.InvalidArgument("player ID is required")
	}
	if input.HeadKey == "" {
		return nil, apperrors.InvalidArgument("head key is required")
	}

	headData, exists := s.catalog.Head(input.HeadKey)
	if !exists {
		return &ExecuteResult{Outcome: OutcomeHeadUnknown}, nil
	}

	if !s.governor.TryAcquire() {
		s.world.SendMessage(input.PlayerID, "The server is too busy to use abilities right now!")
		return &ExecuteResult{Outcome: OutcomeBusy}, nil
	}
	if !s.beginExecution(input.PlayerID) {
		s.governor.Release()
		return &ExecuteResult{Outcome: OutcomeBusy}, nil
	}
	defer func() {
		s.endExecution(input.PlayerID)
		s.governor.Release()
	}()

	if headData.HasBossAbilities() {
		return s.executeBoss(ctx, input, headData), nil
	}
	return s.executeRegular(ctx, input, headData), nil
}

func (s *service) executeRegular(ctx context.Context, input *ExecuteInput, headData *head.HeadData) *ExecuteResult {
	if !headData.HasAbility() {
		return &ExecuteResult{Outcome: OutcomeNoMatch}
	}

	ref := headData.Ability
	if !matchesActivation(ref.Activation, input.Trigger) {
		return &ExecuteResult{Outcome: OutcomeNoMatch}
	}

	if !s.world.HasPermission(input.PlayerID, PermissionUse) {
		s.world.SendMessage(input.PlayerID, "You don't have permission to use head abilities.")
		return &ExecuteResult{Outcome: OutcomeNoPermission}
	}

	reg, exists := s.registry.Lookup(ref.Type)
	if !exists {
		log.Printf("Head %s references unregistered ability type %s", headData.Key, ref.Type)
		return &ExecuteResult{Outcome: OutcomeAbilityUnknown}
	}

	if remaining := s.cooldowns.Remaining(input.PlayerID, ref.Type); remaining > 0 {
		s.world.SendMessage(input.PlayerID, fmt.Sprintf("%s is on cooldown for %.1f more seconds.",
			reg.Descriptor.DisplayName, remaining.Seconds()))
		return &ExecuteResult{Outcome: OutcomeOnCooldown, Remaining: remaining}
	}

	ok, err := s.invoke(ctx, reg.Impl, &Invocation{
		PlayerID: input.PlayerID,
		Trigger:  input.Trigger,
		TargetID: input.TargetID,
		Params:   ref.Params,
		World:    s.world,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTarget) {
			s.world.SendMessage(input.PlayerID, "No valid target.")
			return &ExecuteResult{Outcome: OutcomeInvalidTarget}
		}
		log.Printf("Ability %s failed for player %s: %v", ref.Type, input.PlayerID, err)
		s.world.SendMessage(input.PlayerID, "Something went wrong using that ability.")
		return &ExecuteResult{Outcome: OutcomeInternalError}
	}
	if !ok {
		return &ExecuteResult{Outcome: OutcomeFailed}
	}

	s.cooldowns.Apply(input.PlayerID, reg.Descriptor)
	s.playEffects(input.PlayerID, reg.Impl)
	return &ExecuteResult{Outcome: OutcomeExecuted, Consumed: true}
}

func (s *service) executeBoss(ctx context.Context, input *ExecuteInput, headData *head.HeadData) *ExecuteResult {
	if !s.world.HasPermission(input.PlayerID, PermissionBoss) {
		s.world.SendMessage(input.PlayerID, "You don't have permission to use boss abilities.")
		return &ExecuteResult{Outcome: OutcomeNoPermission}
	}

	s.combos.RecordTrigger(input.PlayerID, headData.Key, input.Trigger)

	bossAbility, exists := headData.BossAbilityFor(input.Trigger)
	if !exists {
		return &ExecuteResult{Outcome: OutcomeNoMatch}
	}

	reg, registered := s.registry.Lookup(bossAbility.Type)
	if !registered {
		log.Printf("Boss head %s references unregistered ability type %s", headData.Key, bossAbility.Type)
		return &ExecuteResult{Outcome: OutcomeAbilityUnknown}
	}

	ok, err := s.invoke(ctx, reg.Impl, &Invocation{
		PlayerID: input.PlayerID,
		Trigger:  input.Trigger,
		TargetID: input.TargetID,
		Params:   bossAbility.Params,
		World:    s.world,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTarget) {
			s.world.SendMessage(input.PlayerID, "No valid target.")
			return &ExecuteResult{Outcome: OutcomeInvalidTarget}
		}
		log.Printf("Boss ability %s failed for player %s: %v", bossAbility.Type, input.PlayerID, err)
		s.world.SendMessage(input.PlayerID, "Something went wrong using that ability.")
		return &ExecuteResult{Outcome: OutcomeInternalError}
	}
	if !ok {
		return &ExecuteResult{Outcome: OutcomeFailed}
	}

	// Boss abilities never charge a cooldown
	s.world.SendMessage(input.PlayerID, fmt.Sprintf("Boss Ability: %s", bossAbility.Name))
	s.playEffects(input.PlayerID, reg.Impl)
	return &ExecuteResult{Outcome: OutcomeExecuted, Consumed: true}
}

// invoke runs one ability implementation, converting a panic into an error
// so a misbehaving ability cannot take down the caller
func (s *service) invoke(ctx context.Context, impl Ability, inv *Invocation) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = apperrors.Internalf("ability %s panicked: %v", impl.Key(), r)
		}
	}()
	return impl.Execute(ctx, inv)
}

func (s *service) playEffects(playerID string, impl Ability) {
	fx, hasEffects := impl.(Effects)
	if !hasEffects {
		return
	}
	if s.sounds {
		if sound := fx.Sound(); sound != "" {
			s.world.PlaySound(playerID, sound)
		}
	}
	if s.particles {
		if name, count := fx.Particle(); name != "" && count > 0 {
			s.world.SpawnParticles(playerID, name, count)
		}
	}
}

func (s *service) InFlight() int {
	return s.governor.InFlight()
}

func (s *service) ClearPlayer(playerID string) {
	s.cooldowns.Clear(playerID)
	s.combos.Clear(playerID)
	s.endExecution(playerID)
}

// beginExecution marks a player as mid-execution, rejecting overlap
func (s *service) beginExecution(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.executing[playerID] {
		return false
	}
	s.executing[playerID] = true
	return true
}

func (s *service) endExecution(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.executing, playerID)
}

// matchesActivation reports whether a head's configured activation accepts
// the incoming trigger. Passive bindings accept any trigger.
func matchesActivation(activation shared.TriggerKind, trigger shared.TriggerKind) bool {
	return activation == trigger || activation == shared.TriggerPassive
}
