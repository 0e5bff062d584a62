package game

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/courtsim/internal/game/core"
	"github.com/mitchelldurbincs/courtsim/internal/game/events"
)

// Ball tracks where the ball is and who holds it. At most one player holds
// the ball at a time.
type Ball struct {
	Position  core.Position
	Possessor *Player

	gameID    string
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewBall creates a ball at pos held by possessor (which may be nil)
func NewBall(pos core.Position, possessor *Player) *Ball {
	return &Ball{
		Position:  pos,
		Possessor: possessor,
		logger:    log.With().Str("component", "ball").Logger(),
	}
}

// SetPublisher attaches an event publisher used to announce possession changes
func (b *Ball) SetPublisher(gameID string, publisher events.Publisher) {
	b.gameID = gameID
	b.publisher = publisher
}

// SetLogger replaces the ball's logger
func (b *Ball) SetLogger(logger zerolog.Logger) {
	b.logger = logger.With().Str("component", "ball").Logger()
}

// MoveTo relocates the ball without changing possession
func (b *Ball) MoveTo(pos core.Position) {
	b.Position = pos
}

// ChangePossessor passes the ball to the current possessor's cached teammate
// nearest the ball's position. It returns false and leaves the ball untouched
// when there is no possessor or no teammate to pass to.
func (b *Ball) ChangePossessor() bool {
	if b.Possessor == nil {
		b.logger.Debug().Msg("No possessor, ball cannot be passed")
		return false
	}

	var target *Player
	best := math.Inf(1)
	for _, mate := range b.Possessor.Teammates {
		if mate == nil {
			continue
		}
		// Measured from the ball, not from the passer
		if d := b.Position.DistanceTo(mate.Position); d < best {
			best = d
			target = mate
		}
	}

	if target == nil {
		b.logger.Debug().
			Int("possessor", b.Possessor.ID).
			Msg("No teammate available for a pass")
		return false
	}

	b.give(target, best)
	return true
}

// ClaimNearest gives the ball to whichever roster member is nearest to it and
// returns that player. Ties go to the earlier roster entry. An empty roster
// returns nil and leaves possession unchanged.
func (b *Ball) ClaimNearest(roster []*Player) *Player {
	var target *Player
	best := math.Inf(1)
	for _, p := range roster {
		if p == nil {
			continue
		}
		if d := b.Position.DistanceTo(p.Position); d < best {
			best = d
			target = p
		}
	}

	if target == nil {
		return nil
	}
	if target != b.Possessor {
		b.give(target, best)
	}
	return target
}

func (b *Ball) give(target *Player, distance float64) {
	from := -1
	if b.Possessor != nil {
		from = b.Possessor.ID
		b.Possessor.HasBall = false
	}
	b.Possessor = target
	target.HasBall = true

	b.logger.Info().
		Int("from_player", from).
		Int("to_player", target.ID).
		Float64("distance", distance).
		Msg("Possession changed")

	if b.publisher != nil {
		b.publisher.Publish(events.NewPossessionChangedEvent(b.gameID, from, target.ID, distance))
	}
}
