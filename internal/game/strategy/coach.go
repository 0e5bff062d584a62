package strategy

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/courtsim/internal/game"
	"github.com/mitchelldurbincs/courtsim/internal/game/events"
)

// NoStrategyMessage is reported when a coach applies without a strategy
const NoStrategyMessage = "No strategy set"

// Coach holds one swappable strategy and watches players
type Coach struct {
	strategy  Strategy
	out       io.Writer
	logger    zerolog.Logger
	gameID    string
	publisher events.Publisher
}

// NewCoach creates a coach with no strategy that reports to out
func NewCoach(out io.Writer, logger zerolog.Logger) *Coach {
	if out == nil {
		out = io.Discard
	}
	return &Coach{
		out:    out,
		logger: logger.With().Str("component", "coach").Logger(),
	}
}

// SetPublisher attaches an event publisher for strategy and observation events
func (c *Coach) SetPublisher(gameID string, publisher events.Publisher) {
	c.gameID = gameID
	c.publisher = publisher
}

// SetStrategy replaces the current strategy. None clears it.
func (c *Coach) SetStrategy(s Strategy) {
	c.logger.Debug().
		Str("from", c.strategy.String()).
		Str("to", s.String()).
		Msg("Strategy set")
	c.strategy = s
}

// Strategy returns the current strategy
func (c *Coach) Strategy() Strategy {
	return c.strategy
}

// ApplyStrategy executes the current strategy and returns its announcement,
// or NoStrategyMessage when none is set.
func (c *Coach) ApplyStrategy() string {
	if c.strategy == None {
		c.logger.Warn().Msg("Apply requested without a strategy")
		fmt.Fprintln(c.out, NoStrategyMessage)
		return NoStrategyMessage
	}

	announcement := c.strategy.Execute()
	fmt.Fprintln(c.out, announcement)
	c.logger.Info().
		Str("strategy", c.strategy.String()).
		Msg("Strategy applied")

	if c.publisher != nil {
		c.publisher.Publish(events.NewStrategyAppliedEvent(c.gameID, c.strategy.String(), announcement))
	}
	return announcement
}

// ObservePlayer reports whether the player holds the ball
func (c *Coach) ObservePlayer(p *game.Player) bool {
	if p.HasBall {
		fmt.Fprintf(c.out, "Player %d has the ball\n", p.ID)
	} else {
		fmt.Fprintf(c.out, "Player %d does not have the ball\n", p.ID)
	}

	if c.publisher != nil {
		c.publisher.Publish(events.NewPlayerObservedEvent(c.gameID, p.ID, p.HasBall))
	}
	return p.HasBall
}
