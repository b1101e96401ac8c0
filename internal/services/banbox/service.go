package banbox

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/xreatlabs/headsteal/internal/clock"
	"github.com/xreatlabs/headsteal/internal/config"
	"github.com/xreatlabs/headsteal/internal/domain/banbox"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
	"github.com/xreatlabs/headsteal/internal/interfaces"
	banboxrepo "github.com/xreatlabs/headsteal/internal/repositories/banbox"
	"github.com/xreatlabs/headsteal/internal/services/life"
	"github.com/xreatlabs/headsteal/internal/uuid"
)

// PermissionBypass exempts its holder from ban box entry
const PermissionBypass = "headsteal.banbox.bypass"

// spectatorPerchHeight is how far above the death location the banned
// player is parked
const spectatorPerchHeight = 2

type service struct {
	repo     banboxrepo.Repository
	world    interfaces.WorldAPI
	lives    life.Service
	clock    clock.Clock
	uuid     uuid.Generator
	settings config.BanBoxConfig

	// mu guards locks; each player's lifecycle transitions are serialized
	// on their own mutex
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// ServiceConfig holds the dependencies of the ban box service
type ServiceConfig struct {
	Repository banboxrepo.Repository
	World      interfaces.WorldAPI
	Lives      life.Service // optional; required when Settings.RevivalLifeCost > 0
	Clock      clock.Clock
	UUID       uuid.Generator
	Settings   config.BanBoxConfig
}

// NewService creates a new ban box service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("banbox.ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("banbox repository cannot be nil")
	}
	if cfg.World == nil {
		panic("world API cannot be nil")
	}
	if cfg.Settings.RevivalLifeCost > 0 && cfg.Lives == nil {
		panic("life service is required when revival costs lives")
	}

	svc := &service{
		repo:     cfg.Repository,
		world:    cfg.World,
		lives:    cfg.Lives,
		clock:    cfg.Clock,
		uuid:     cfg.UUID,
		settings: cfg.Settings,
		locks:    make(map[string]*sync.Mutex),
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if svc.settings.AutoUnbanDays < 1 {
		svc.settings.AutoUnbanDays = 30
	}
	return svc
}

func (s *service) HandleDeath(ctx context.Context, input *DeathInput) (*DeathResult, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("death input is required")
	}
	if input.PlayerID == "" {
		return nil, apperrors.InvalidArgument("player ID is required")
	}

	if !s.settings.Enabled {
		return &DeathResult{Skipped: SkipDisabled}, nil
	}
	if !s.worldEligible(input.Location.World) {
		return &DeathResult{Skipped: SkipWorld}, nil
	}

	mode, err := s.world.PlayerGameMode(input.PlayerID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to resolve game mode for '%s'", input.PlayerID)
	}
	if mode.BypassesBanBox() {
		return &DeathResult{Skipped: SkipGameMode}, nil
	}
	if s.world.HasPermission(input.PlayerID, PermissionBypass) {
		return &DeathResult{Skipped: SkipBypass}, nil
	}

	lock := s.playerLock(input.PlayerID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.repo.Get(ctx, input.PlayerID); err == nil {
		return &DeathResult{Skipped: SkipAlreadyBanned}, nil
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	name, err := s.world.PlayerName(input.PlayerID)
	if err != nil {
		name = input.PlayerID
	}

	record := &banbox.Record{
		PlayerID:      input.PlayerID,
		PlayerName:    name,
		KillerID:      input.KillerID,
		DeathLocation: input.Location,
		BanTimestamp:  s.clock.Now(),
		AutoUnbanDays: s.settings.AutoUnbanDays,
		HeadToken:     s.uuid.New(),
	}

	// Persist before touching the world so a storage failure leaves the
	// player untouched
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, apperrors.Wrapf(err, "failed to save ban for '%s'", input.PlayerID)
	}

	s.applyBanState(record)
	if err := s.world.DropHead(input.Location, input.PlayerID, name, record.HeadToken); err != nil {
		log.Printf("Failed to drop revival head for %s: %v", input.PlayerID, err)
	}
	if s.settings.DeathPenaltyXP > 0 {
		if err := s.world.TakeExperienceLevels(input.PlayerID, s.settings.DeathPenaltyXP); err != nil {
			log.Printf("Failed to take experience from %s: %v", input.PlayerID, err)
		}
	}

	s.world.SendMessage(input.PlayerID, "You died! Another player must use your head to revive you.")
	s.world.Broadcast(fmt.Sprintf("%s has been trapped in the ban box!", name))
	log.Printf("Player %s banboxed at %s (killer=%s)", input.PlayerID, input.Location.World, input.KillerID)

	return &DeathResult{Banned: true, HeadToken: record.HeadToken}, nil
}

func (s *service) Revive(ctx context.Context, input *ReviveInput) (*ReviveResult, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("revive input is required")
	}
	if input.VictimID == "" {
		return nil, apperrors.InvalidArgument("victim ID is required")
	}
	if input.Token == "" {
		return nil, apperrors.InvalidArgument("head token is required")
	}

	lock := s.playerLock(input.VictimID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.repo.Get(ctx, input.VictimID)
	if err != nil {
		return nil, err
	}
	if record.PendingRestore {
		return nil, apperrors.AlreadyExistsf("player '%s' is already revived", input.VictimID)
	}
	if record.PermanentBan {
		return nil, apperrors.InvalidArgumentf("player '%s' is permanently banned until %s",
			input.VictimID, record.AutoUnbanAt().Format("2006-01-02"))
	}
	if record.HeadToken != input.Token {
		return nil, apperrors.InvalidArgumentf("head does not belong to player '%s'", input.VictimID)
	}

	spent := 0
	if s.settings.RevivalLifeCost > 0 && input.ReviverID != "" {
		if _, err := s.lives.Spend(ctx, input.ReviverID, s.settings.RevivalLifeCost); err != nil {
			return nil, err
		}
		spent = s.settings.RevivalLifeCost
	}

	bannedFor := s.clock.Now().Sub(record.BanTimestamp)
	result := &ReviveResult{VictimName: record.PlayerName, LivesSpent: spent, BannedFor: bannedFor}

	if s.world.IsOnline(input.VictimID) {
		// The repository delete decides the race between concurrent
		// revivers: only the caller that removes the record wins
		if err := s.repo.Delete(ctx, input.VictimID); err != nil {
			s.refundLives(ctx, input.ReviverID, spent)
			return nil, err
		}
		s.applyRestore(input.VictimID, record, input.Location)
	} else {
		record.PendingRestore = true
		if err := s.repo.Save(ctx, record); err != nil {
			s.refundLives(ctx, input.ReviverID, spent)
			return nil, apperrors.Wrapf(err, "failed to defer restore for '%s'", input.VictimID)
		}
		result.Deferred = true
	}

	if input.ReviverID != "" && s.settings.ReviverRewardXP > 0 {
		if err := s.world.GiveExperience(input.ReviverID, s.settings.ReviverRewardXP); err != nil {
			log.Printf("Failed to reward reviver %s: %v", input.ReviverID, err)
		}
	}
	if s.settings.RevivalBroadcast {
		reviverName := "an admin"
		if input.ReviverID != "" {
			if n, err := s.world.PlayerName(input.ReviverID); err == nil {
				reviverName = n
			}
		}
		s.world.Broadcast(fmt.Sprintf("%s has been revived by %s!", record.PlayerName, reviverName))
	}
	log.Printf("Player %s revived by %s after %s", input.VictimID, input.ReviverID, bannedFor)

	return result, nil
}

func (s *service) Release(ctx context.Context, playerID string) error {
	if playerID == "" {
		return apperrors.InvalidArgument("player ID is required")
	}

	lock := s.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, playerID); err != nil {
		return err
	}

	if s.world.IsOnline(playerID) {
		s.applyRestore(playerID, record, shared.Location{})
	}
	log.Printf("Player %s released from the ban box", playerID)
	return nil
}

func (s *service) HandleHeadDestroyed(ctx context.Context, token string) (*banbox.Record, error) {
	if token == "" {
		return nil, apperrors.InvalidArgument("head token is required")
	}

	record, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	lock := s.playerLock(record.PlayerID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; the player may have been revived meanwhile
	record, err = s.repo.Get(ctx, record.PlayerID)
	if err != nil {
		return nil, err
	}
	if record.HeadToken != token || record.PendingRestore {
		return nil, apperrors.NotFoundf("no active ban matches the destroyed head")
	}
	if record.PermanentBan {
		return record, nil
	}

	// The only mutation is the permanent flag; the auto-unban window keeps
	// counting from the original ban
	record.PermanentBan = true
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, apperrors.Wrapf(err, "failed to persist permanent ban for '%s'", record.PlayerID)
	}

	if s.world.IsOnline(record.PlayerID) {
		if err := s.world.Disconnect(record.PlayerID, s.permanentBanMessage(record)); err != nil {
			log.Printf("Failed to disconnect %s: %v", record.PlayerID, err)
		}
	}
	s.world.Broadcast(fmt.Sprintf("%s's head was destroyed! They are banned until %s.",
		record.PlayerName, record.AutoUnbanAt().Format("2006-01-02")))
	log.Printf("Player %s permanently banned, auto-unban at %s", record.PlayerID, record.AutoUnbanAt())

	return record, nil
}

func (s *service) HandleLogin(ctx context.Context, playerID string) error {
	if playerID == "" {
		return apperrors.InvalidArgument("player ID is required")
	}

	lock := s.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.repo.Get(ctx, playerID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}

	switch {
	case record.PendingRestore:
		if err := s.repo.Delete(ctx, playerID); err != nil {
			return err
		}
		s.applyRestore(playerID, record, shared.Location{})
		s.world.SendMessage(playerID, "You were revived while you were away. Welcome back!")

	case record.PermanentBan && record.Expired(s.clock.Now()):
		if err := s.repo.Delete(ctx, playerID); err != nil {
			return err
		}
		s.applyRestore(playerID, record, shared.Location{})
		s.world.SendMessage(playerID, "Your ban has expired. Welcome back!")

	case record.PermanentBan:
		return s.world.Disconnect(playerID, s.permanentBanMessage(record))

	default:
		// Still banboxed: re-apply the spectator perch
		s.applyBanState(record)
		s.world.SendMessage(playerID, "You are still trapped in the ban box.")
	}
	return nil
}

func (s *service) IsBanned(ctx context.Context, playerID string) (bool, error) {
	if playerID == "" {
		return false, apperrors.InvalidArgument("player ID is required")
	}

	record, err := s.repo.Get(ctx, playerID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if record.PendingRestore {
		return false, nil
	}
	if record.PermanentBan && record.Expired(s.clock.Now()) {
		return false, nil
	}
	return true, nil
}

func (s *service) Get(ctx context.Context, playerID string) (*banbox.Record, error) {
	if playerID == "" {
		return nil, apperrors.InvalidArgument("player ID is required")
	}
	return s.repo.Get(ctx, playerID)
}

func (s *service) Count(ctx context.Context) (int, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, record := range records {
		if !record.PendingRestore {
			count++
		}
	}
	return count, nil
}

func (s *service) ProcessAutoUnbans(ctx context.Context) (int, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	released := 0
	for _, record := range records {
		if !record.PermanentBan || !record.Expired(now) {
			continue
		}
		lock := s.playerLock(record.PlayerID)
		lock.Lock()
		// The snapshot may be stale: the player could have been revived
		// and re-banned since GetAll. Re-read under the lock and only
		// delete a record that is still a lapsed permanent ban.
		fresh, err := s.repo.Get(ctx, record.PlayerID)
		if err != nil {
			lock.Unlock()
			if !apperrors.IsNotFound(err) {
				log.Printf("Failed to auto-unban %s: %v", record.PlayerID, err)
			}
			continue
		}
		if !fresh.PermanentBan || !fresh.Expired(now) {
			lock.Unlock()
			continue
		}
		err = s.repo.Delete(ctx, record.PlayerID)
		lock.Unlock()
		if err != nil {
			if !apperrors.IsNotFound(err) {
				log.Printf("Failed to auto-unban %s: %v", record.PlayerID, err)
			}
			continue
		}
		released++
		log.Printf("Auto-unbanned %s after %d days", fresh.PlayerID, fresh.AutoUnbanDays)
	}
	return released, nil
}

// applyBanState parks the player in spectator above their death location
func (s *service) applyBanState(record *banbox.Record) {
	if !s.world.IsOnline(record.PlayerID) {
		return
	}
	if err := s.world.SetGameMode(record.PlayerID, shared.GameModeSpectator); err != nil {
		log.Printf("Failed to set spectator for %s: %v", record.PlayerID, err)
	}
	if err := s.world.Teleport(record.PlayerID, record.DeathLocation.Above(spectatorPerchHeight)); err != nil {
		log.Printf("Failed to teleport %s: %v", record.PlayerID, err)
	}
}

// applyRestore returns a player to survival with vitals refilled and
// lingering debuffs stripped. They come back where the revival head was
// used, or at their world's spawn when no location is known (admin release,
// deferred offline restores).
func (s *service) applyRestore(playerID string, record *banbox.Record, dest shared.Location) {
	if err := s.world.SetGameMode(playerID, shared.GameModeSurvival); err != nil {
		log.Printf("Failed to restore game mode for %s: %v", playerID, err)
	}
	if dest.IsZero() {
		dest = s.world.SpawnLocation(record.DeathLocation.World)
	}
	if err := s.world.Teleport(playerID, dest); err != nil {
		log.Printf("Failed to teleport %s: %v", playerID, err)
	}
	if err := s.world.RestoreVitals(playerID); err != nil {
		log.Printf("Failed to restore vitals for %s: %v", playerID, err)
	}
	if err := s.world.RemoveEffects(playerID, shared.DebuffEffects()); err != nil {
		log.Printf("Failed to strip debuffs from %s: %v", playerID, err)
	}
	s.world.SendMessage(playerID, "You have been revived!")
}

func (s *service) refundLives(ctx context.Context, reviverID string, spent int) {
	if spent <= 0 || reviverID == "" {
		return
	}
	if _, err := s.lives.Add(ctx, reviverID, spent); err != nil {
		log.Printf("Failed to refund %d lives to %s: %v", spent, reviverID, err)
	}
}

func (s *service) findByToken(ctx context.Context, token string) (*banbox.Record, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.HeadToken == token {
			return record, nil
		}
	}
	return nil, apperrors.NotFoundf("no ban matches the head token")
}

func (s *service) worldEligible(world string) bool {
	if len(s.settings.EnabledWorlds) > 0 {
		for _, w := range s.settings.EnabledWorlds {
			if w == world {
				return true
			}
		}
		return false
	}
	for _, w := range s.settings.DisabledWorlds {
		if w == world {
			return false
		}
	}
	return true
}

func (s *service) permanentBanMessage(record *banbox.Record) string {
	return fmt.Sprintf("Your head was destroyed! You are banned until %s.",
		record.AutoUnbanAt().Format("2006-01-02 15:04 MST"))
}

func (s *service) playerLock(playerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[playerID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[playerID] = lock
	}
	return lock
}
