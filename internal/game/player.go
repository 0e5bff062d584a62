package game

import (
	"fmt"
	"sort"

	"github.com/mitchelldurbincs/courtsim/internal/game/core"
)

// Player is a single agent on the court. Teammates and Opponents are caches of
// the nearest players, refreshed only when FindTeammates/FindOpponents run.
type Player struct {
	ID        int
	Position  core.Position
	HasBall   bool
	Teammates []*Player
	Opponents []*Player
}

// NewPlayer creates a player at the given position
func NewPlayer(id int, pos core.Position, hasBall bool) *Player {
	return &Player{
		ID:       id,
		Position: pos,
		HasBall:  hasBall,
	}
}

// TeamOf maps a player id to its team using integer division by teamSize.
// Returns -1 when teamSize is not positive.
func TeamOf(id, teamSize int) int {
	if teamSize <= 0 {
		return -1
	}
	return id / teamSize
}

// FindTeammates refreshes the teammate cache with up to MaxTeammates of the
// nearest roster members on teamID, excluding the player itself.
func (p *Player) FindTeammates(roster []*Player, teamID, teamSize int) {
	p.Teammates = p.nearest(roster, MaxTeammates, func(other *Player) bool {
		return other.ID != p.ID && TeamOf(other.ID, teamSize) == teamID
	}, teamSize)
}

// FindOpponents refreshes the opponent cache with up to MaxOpponents of the
// nearest roster members not on teamID. The player itself is never included.
func (p *Player) FindOpponents(roster []*Player, teamID, teamSize int) {
	p.Opponents = p.nearest(roster, MaxOpponents, func(other *Player) bool {
		return other.ID != p.ID && TeamOf(other.ID, teamSize) != teamID
	}, teamSize)
}

type candidate struct {
	player   *Player
	distance float64
}

func (p *Player) nearest(roster []*Player, limit int, keep func(*Player) bool, teamSize int) []*Player {
	if teamSize <= 0 {
		return nil
	}

	candidates := make([]candidate, 0, len(roster))
	for _, other := range roster {
		if other == nil || !keep(other) {
			continue
		}
		candidates = append(candidates, candidate{
			player:   other,
			distance: p.Position.DistanceTo(other.Position),
		})
	}

	// Stable so that equal distances keep roster order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]*Player, len(candidates))
	for i, c := range candidates {
		result[i] = c.player
	}
	return result
}

// String returns a string representation of the player
func (p *Player) String() string {
	return fmt.Sprintf("Player %d at %s", p.ID, p.Position)
}
