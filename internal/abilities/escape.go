package abilities

import (
	"context"

	"github.com/xreatlabs/headsteal/internal/services/ability"
)

// SpawnEscape teleports the user to their world's spawn point
type SpawnEscape struct{}

func (a *SpawnEscape) Key() string { return "spawn_escape" }

func (a *SpawnEscape) Execute(ctx context.Context, inv *ability.Invocation) (bool, error) {
	world, err := inv.World.PlayerWorld(inv.PlayerID)
	if err != nil {
		return false, err
	}
	if err := inv.World.Teleport(inv.PlayerID, inv.World.SpawnLocation(world)); err != nil {
		return false, err
	}
	return true, nil
}

func (a *SpawnEscape) Sound() string { return "entity.enderman.teleport" }

func (a *SpawnEscape) Particle() (string, int) { return "portal", 40 }
