// Package life implements the extra-lives currency. Balances are clamped to
// [0, Max]; a player with no stored balance holds the configured default.
package life

import (
	"context"
	"sync"

	apperrors "github.com/xreatlabs/headsteal/internal/errors"
	liferepo "github.com/xreatlabs/headsteal/internal/repositories/life"
)

// Service manages per-player life balances
type Service interface {
	// Get returns the player's balance, or the default when none is stored
	Get(ctx context.Context, playerID string) (int, error)

	// Set stores a balance, clamped into [0, Max]
	Set(ctx context.Context, playerID string, lives int) (int, error)

	// Add credits lives, clamping at Max. Returns the new balance.
	Add(ctx context.Context, playerID string, amount int) (int, error)

	// Remove debits lives, clamping at zero. Returns the new balance.
	Remove(ctx context.Context, playerID string, amount int) (int, error)

	// Spend debits exactly amount, failing without change when the balance
	// cannot cover it. Returns the new balance.
	Spend(ctx context.Context, playerID string, amount int) (int, error)

	// Max returns the configured balance ceiling
	Max() int
}

type service struct {
	repo         liferepo.Repository
	defaultLives int
	maxLives     int

	// mu serializes read-modify-write cycles against the repository
	mu sync.Mutex
}

// ServiceConfig holds the dependencies of the life service
type ServiceConfig struct {
	Repository   liferepo.Repository
	DefaultLives int
	MaxLives     int
}

// NewService creates a new life service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("life.ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("life repository cannot be nil")
	}

	svc := &service{
		repo:         cfg.Repository,
		defaultLives: cfg.DefaultLives,
		maxLives:     cfg.MaxLives,
	}
	if svc.defaultLives <= 0 {
		svc.defaultLives = 3
	}
	if svc.maxLives < svc.defaultLives {
		svc.maxLives = 10
	}
	return svc
}

func (s *service) Get(ctx context.Context, playerID string) (int, error) {
	if playerID == "" {
		return 0, apperrors.InvalidArgument("player ID is required")
	}
	return s.load(ctx, playerID)
}

func (s *service) Set(ctx context.Context, playerID string, lives int) (int, error) {
	if playerID == "" {
		return 0, apperrors.InvalidArgument("player ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clamped := s.clamp(lives)
	if err := s.repo.Set(ctx, playerID, clamped); err != nil {
		return 0, err
	}
	return clamped, nil
}

func (s *service) Add(ctx context.Context, playerID string, amount int) (int, error) {
	if playerID == "" {
		return 0, apperrors.InvalidArgument("player ID is required")
	}
	if amount < 0 {
		return 0, apperrors.InvalidArgument("amount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, playerID)
	if err != nil {
		return 0, err
	}
	next := s.clamp(current + amount)
	if err := s.repo.Set(ctx, playerID, next); err != nil {
		return 0, err
	}
	return next, nil
}

func (s *service) Remove(ctx context.Context, playerID string, amount int) (int, error) {
	if playerID == "" {
		return 0, apperrors.InvalidArgument("player ID is required")
	}
	if amount < 0 {
		return 0, apperrors.InvalidArgument("amount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, playerID)
	if err != nil {
		return 0, err
	}
	next := s.clamp(current - amount)
	if err := s.repo.Set(ctx, playerID, next); err != nil {
		return 0, err
	}
	return next, nil
}

func (s *service) Spend(ctx context.Context, playerID string, amount int) (int, error) {
	if playerID == "" {
		return 0, apperrors.InvalidArgument("player ID is required")
	}
	if amount < 0 {
		return 0, apperrors.InvalidArgument("amount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, playerID)
	if err != nil {
		return 0, err
	}
	if current < amount {
		return current, apperrors.InvalidArgumentf("player '%s' has %d lives, needs %d", playerID, current, amount)
	}
	next := current - amount
	if err := s.repo.Set(ctx, playerID, next); err != nil {
		return current, err
	}
	return next, nil
}

func (s *service) Max() int {
	return s.maxLives
}

// load reads the stored balance, substituting the default for a player the
// repository has never seen
func (s *service) load(ctx context.Context, playerID string) (int, error) {
	lives, err := s.repo.Get(ctx, playerID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return s.defaultLives, nil
		}
		return 0, err
	}
	return s.clamp(lives), nil
}

func (s *service) clamp(lives int) int {
	if lives < 0 {
		return 0
	}
	if lives > s.maxLives {
		return s.maxLives
	}
	return lives
}
