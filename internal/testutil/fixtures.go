package testutil

import (
	"github.com/mitchelldurbincs/courtsim/internal/game"
	"github.com/mitchelldurbincs/courtsim/internal/game/core"
)

// CreateTestRoster creates players with ids 0..len(positions)-1 at the given positions
func CreateTestRoster(positions ...core.Position) []*game.Player {
	roster := make([]*game.Player, len(positions))
	for i, pos := range positions {
		roster[i] = game.NewPlayer(i, pos, false)
	}
	return roster
}

// CreateLineRoster creates count players spaced one metre apart along the x axis
func CreateLineRoster(count int) []*game.Player {
	positions := make([]core.Position, count)
	for i := range positions {
		positions[i] = core.NewPosition(float64(i), 0)
	}
	return CreateTestRoster(positions...)
}

// CreateDemoPlayers returns the four players used throughout the walkthrough.
// Player 1 starts with the ball.
func CreateDemoPlayers() []*game.Player {
	return []*game.Player{
		game.NewPlayer(1, core.NewPosition(10, 20), true),
		game.NewPlayer(2, core.NewPosition(30, 40), false),
		game.NewPlayer(3, core.NewPosition(50, 60), false),
		game.NewPlayer(4, core.NewPosition(70, 80), false),
	}
}
