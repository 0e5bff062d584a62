package team_test

import (
	"os"

	"github.com/mitchelldurbincs/courtsim/internal/game"
	"github.com/mitchelldurbincs/courtsim/internal/game/core"
	"github.com/mitchelldurbincs/courtsim/internal/game/team"
)

func ExampleTree_Display() {
	tree := team.NewTree()
	squad := tree.AddGroup("Red")
	_ = tree.Add(squad, tree.AddLeaf(game.NewPlayer(1, core.NewPosition(10, 20), true)))
	_ = tree.Add(squad, tree.AddLeaf(game.NewPlayer(2, core.NewPosition(30, 40), false)))

	_ = tree.Display(os.Stdout, squad)

	// Output:
	// Team Red:
	//   Player 1 at (10.00, 20.00)
	//   Player 2 at (30.00, 40.00)
}
