package interfaces

import (
	"sync"
	"time"

	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

// DroppedHead records a head item dropped through the FakeWorld
type DroppedHead struct {
	Location   shared.Location
	VictimID   string
	VictimName string
	Token      string
}

// FakeWorld implements WorldAPI for testing with in-memory state. It records
// every side effect so tests can assert on what the core asked the host to do.
type FakeWorld struct {
	mu sync.Mutex

	online map[string]bool
	names  map[string]string
	worlds map[string]string
	modes  map[string]shared.GameMode
	perms  map[string]bool // playerID+":"+permission explicitly granted

	Teleports      map[string]shared.Location
	DroppedHeads   []DroppedHead
	Disconnects    map[string]string
	Messages       map[string][]string
	Broadcasts     []string
	AppliedEffects map[string][]shared.EffectType
	RemovedEffects map[string][]shared.EffectType
	VitalsRestored map[string]int
	XPGiven        map[string]int
	XPLevelsTaken  map[string]int
	Spawn          shared.Location
}

// NewFakeWorld creates an empty fake world
func NewFakeWorld() *FakeWorld {
	return &FakeWorld{
		online:         make(map[string]bool),
		names:          make(map[string]string),
		worlds:         make(map[string]string),
		modes:          make(map[string]shared.GameMode),
		perms:          make(map[string]bool),
		Teleports:      make(map[string]shared.Location),
		Disconnects:    make(map[string]string),
		Messages:       make(map[string][]string),
		AppliedEffects: make(map[string][]shared.EffectType),
		RemovedEffects: make(map[string][]shared.EffectType),
		VitalsRestored: make(map[string]int),
		XPGiven:        make(map[string]int),
		XPLevelsTaken:  make(map[string]int),
		Spawn:          shared.Location{World: "world", X: 0, Y: 100, Z: 0},
	}
}

// AddPlayer registers a player in the fake world
func (w *FakeWorld) AddPlayer(id, name, world string, mode shared.GameMode, online bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.online[id] = online
	w.names[id] = name
	w.worlds[id] = world
	w.modes[id] = mode
}

// SetOnline flips a player's connected state
func (w *FakeWorld) SetOnline(id string, online bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.online[id] = online
}

// GrantPermission makes HasPermission return true for one node. Nodes are
// deny-by-default, matching host permission systems.
func (w *FakeWorld) GrantPermission(id, permission string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.perms[id+":"+permission] = true
}

// RevokePermission withdraws a previously granted node
func (w *FakeWorld) RevokePermission(id, permission string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.perms, id+":"+permission)
}

// Mode returns the player's current mode as seen by the fake
func (w *FakeWorld) Mode(id string) shared.GameMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.modes[id]
}

func (w *FakeWorld) IsOnline(playerID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.online[playerID]
}

func (w *FakeWorld) PlayerName(playerID string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	name, ok := w.names[playerID]
	if !ok {
		return "", apperrors.NotFoundf("player '%s' not known", playerID)
	}
	return name, nil
}

func (w *FakeWorld) PlayerWorld(playerID string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	world, ok := w.worlds[playerID]
	if !ok {
		return "", apperrors.NotFoundf("player '%s' not known", playerID)
	}
	return world, nil
}

func (w *FakeWorld) PlayerGameMode(playerID string) (shared.GameMode, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	mode, ok := w.modes[playerID]
	if !ok {
		return "", apperrors.NotFoundf("player '%s' not known", playerID)
	}
	return mode, nil
}

func (w *FakeWorld) HasPermission(playerID, permission string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.perms[playerID+":"+permission]
}

func (w *FakeWorld) SetGameMode(playerID string, mode shared.GameMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.modes[playerID] = mode
	return nil
}

func (w *FakeWorld) Teleport(playerID string, loc shared.Location) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Teleports[playerID] = loc
	return nil
}

func (w *FakeWorld) RestoreVitals(playerID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.VitalsRestored[playerID]++
	return nil
}

func (w *FakeWorld) ApplyEffect(playerID string, effect shared.EffectType, duration time.Duration, amplifier int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.AppliedEffects[playerID] = append(w.AppliedEffects[playerID], effect)
	return nil
}

func (w *FakeWorld) RemoveEffects(playerID string, effects []shared.EffectType) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.RemovedEffects[playerID] = append(w.RemovedEffects[playerID], effects...)
	return nil
}

func (w *FakeWorld) DropHead(loc shared.Location, victimID, victimName, token string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.DroppedHeads = append(w.DroppedHeads, DroppedHead{
		Location:   loc,
		VictimID:   victimID,
		VictimName: victimName,
		Token:      token,
	})
	return nil
}

func (w *FakeWorld) GiveExperience(playerID string, amount int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.XPGiven[playerID] += amount
	return nil
}

func (w *FakeWorld) TakeExperienceLevels(playerID string, levels int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.XPLevelsTaken[playerID] += levels
	return nil
}

func (w *FakeWorld) Disconnect(playerID, message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Disconnects[playerID] = message
	w.online[playerID] = false
	return nil
}

func (w *FakeWorld) SendMessage(playerID, message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Messages[playerID] = append(w.Messages[playerID], message)
}

func (w *FakeWorld) Broadcast(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Broadcasts = append(w.Broadcasts, message)
}

func (w *FakeWorld) PlaySound(playerID, sound string) {}

func (w *FakeWorld) SpawnParticles(playerID, particle string, count int) {}

func (w *FakeWorld) SpawnLocation(world string) shared.Location {
	w.mu.Lock()
	defer w.mu.Unlock()
	loc := w.Spawn
	loc.World = world
	return loc
}
