package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/xreatlabs/headsteal/internal/abilities"
	"github.com/xreatlabs/headsteal/internal/catalog"
	"github.com/xreatlabs/headsteal/internal/clock"
	"github.com/xreatlabs/headsteal/internal/config"
	"github.com/xreatlabs/headsteal/internal/interfaces"
	banboxrepo "github.com/xreatlabs/headsteal/internal/repositories/banbox"
	liferepo "github.com/xreatlabs/headsteal/internal/repositories/life"
	"github.com/xreatlabs/headsteal/internal/services/ability"
	"github.com/xreatlabs/headsteal/internal/services/banbox"
	"github.com/xreatlabs/headsteal/internal/services/life"
	"github.com/xreatlabs/headsteal/internal/world"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := client.Ping(ctx).Err(); err != nil {
		cancel()
		log.Fatalf("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, err)
	}
	cancel()
	log.Printf("Connected to Redis at %s", cfg.Redis.Addr)

	catalogPath := os.Getenv("HEADSTEAL_CATALOG")
	if catalogPath == "" {
		catalogPath = "heads.json"
	}
	heads, err := catalog.LoadFile(catalogPath)
	if err != nil {
		log.Fatalf("Failed to load head catalog from %s: %v", catalogPath, err)
	}
	log.Printf("Loaded %d heads from %s", heads.Len(), catalogPath)

	registry := ability.NewRegistry()
	if err := abilities.RegisterAll(registry); err != nil {
		log.Fatalf("Failed to register abilities: %v", err)
	}
	log.Printf("Registered %d abilities", registry.Count())

	clk := clock.New()
	cooldowns := ability.NewCooldownTracker(&ability.CooldownTrackerConfig{
		Clock:      clk,
		Enabled:    cfg.Abilities.CooldownsEnabled,
		Multiplier: cfg.Abilities.CooldownMultiplier,
	})
	combos := ability.NewComboTracker(&ability.ComboTrackerConfig{
		Clock:  clk,
		Window: cfg.Abilities.ComboWindow,
	})

	validateCatalog(heads, registry, heads)

	// Headless adapter: a live host swaps its own world API in here
	worldAPI := world.NewLogWorld()

	engine := ability.NewService(&ability.ServiceConfig{
		Catalog:          heads,
		World:            worldAPI,
		Registry:         registry,
		Cooldowns:        cooldowns,
		Combos:           combos,
		Governor:         ability.NewGovernor(cfg.Abilities.MaxConcurrent),
		SoundsEnabled:    cfg.Abilities.SoundsEnabled,
		ParticlesEnabled: cfg.Abilities.ParticlesEnabled,
	})
	log.Printf("Ability engine ready (max %d concurrent)", cfg.Abilities.MaxConcurrent)

	lifeService := life.NewService(&life.ServiceConfig{
		Repository:   liferepo.NewRedisRepository(&liferepo.RedisRepoConfig{Client: client}),
		DefaultLives: cfg.Lives.Default,
		MaxLives:     cfg.Lives.Max,
	})

	banboxService := banbox.NewService(&banbox.ServiceConfig{
		Repository: banboxrepo.NewRedisRepository(&banboxrepo.RedisRepoConfig{Client: client}),
		World:      worldAPI,
		Lives:      lifeService,
		Clock:      clk,
		Settings:   cfg.BanBox,
	})

	if count, err := banboxService.Count(context.Background()); err == nil {
		log.Printf("Tracking %d active bans", count)
	}

	stop := make(chan struct{})
	go runSweeps(stop, cfg, engine, cooldowns, combos, banboxService)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("Shutting down...")
	close(stop)
	if err := client.Close(); err != nil {
		log.Printf("Failed to close Redis client: %v", err)
	}
}

// runSweeps drives the periodic maintenance: expired cooldown and combo
// entries are reclaimed, and lapsed permanent bans released
func runSweeps(stop <-chan struct{}, cfg *config.Config, engine ability.Service, cooldowns *ability.CooldownTracker, combos *ability.ComboTracker, bans banbox.Service) {
	cooldownTicker := time.NewTicker(cfg.Abilities.CooldownSweep)
	comboTicker := time.NewTicker(cfg.Abilities.ComboSweep)
	unbanTicker := time.NewTicker(cfg.BanBox.UnbanSweep)
	defer cooldownTicker.Stop()
	defer comboTicker.Stop()
	defer unbanTicker.Stop()

	processAutoUnbans(bans)

	for {
		select {
		case <-cooldownTicker.C:
			if n := cooldowns.Sweep(); n > 0 {
				log.Printf("Reclaimed %d expired cooldowns", n)
			}
			if busy := engine.InFlight(); busy > 0 {
				log.Printf("%d ability executions in flight", busy)
			}
		case <-comboTicker.C:
			combos.Sweep()
		case <-unbanTicker.C:
			processAutoUnbans(bans)
		case <-stop:
			return
		}
	}
}

// validateCatalog warns about heads referencing ability types nothing has
// registered (those heads fail closed at use time) and, when a texture
// resolver is bound, about heads with no art. A nil resolver is fine; heads
// work without resolved textures.
func validateCatalog(heads *catalog.FileCatalog, registry *ability.Registry, textures interfaces.TextureResolver) {
	for _, key := range heads.Keys() {
		data, ok := heads.Head(key)
		if !ok {
			continue
		}
		if data.HasAbility() {
			if _, registered := registry.Lookup(data.Ability.Type); !registered {
				log.Printf("WARNING: head %s references unregistered ability %s", key, data.Ability.Type)
			}
		}
		for _, ba := range data.BossAbilities {
			if _, registered := registry.Lookup(ba.Type); !registered {
				log.Printf("WARNING: head %s references unregistered boss ability %s", key, ba.Type)
			}
		}
		if textures != nil {
			if _, err := textures.Resolve(key); err != nil {
				log.Printf("Head %s has no texture bound; it will use default art", key)
			}
		}
	}
}

func processAutoUnbans(bans banbox.Service) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	released, err := bans.ProcessAutoUnbans(ctx)
	if err != nil {
		log.Printf("Auto-unban sweep failed: %v", err)
		return
	}
	if released > 0 {
		log.Printf("Auto-unbanned %d players", released)
	}
}
