package events

import (
	"time"
)

// Event type constants
const (
	TypeScoreUpdated      = "score.updated"
	TypePossessionChanged = "possession.changed"
	TypeStrategyApplied   = "strategy.applied"
	TypePlayerObserved    = "player.observed"
)

// ScoreUpdatedEvent is published after the scoreboard changes
type ScoreUpdatedEvent struct {
	BaseEvent
	Home int
	Away int
}

// NewScoreUpdatedEvent creates a new ScoreUpdatedEvent
func NewScoreUpdatedEvent(gameID string, home, away int) *ScoreUpdatedEvent {
	return &ScoreUpdatedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeScoreUpdated,
			Time:      time.Now(),
			Game:      gameID,
		},
		Home: home,
		Away: away,
	}
}

// PossessionChangedEvent is published when the ball changes hands.
// FromPlayer is -1 when nobody held the ball before.
type PossessionChangedEvent struct {
	BaseEvent
	FromPlayer int
	ToPlayer   int
	Distance   float64
}

// NewPossessionChangedEvent creates a new PossessionChangedEvent
func NewPossessionChangedEvent(gameID string, from, to int, distance float64) *PossessionChangedEvent {
	return &PossessionChangedEvent{
		BaseEvent: BaseEvent{
			EventType: TypePossessionChanged,
			Time:      time.Now(),
			Game:      gameID,
		},
		FromPlayer: from,
		ToPlayer:   to,
		Distance:   distance,
	}
}

// StrategyAppliedEvent is published each time a coach applies a strategy
type StrategyAppliedEvent struct {
	BaseEvent
	Strategy     string
	Announcement string
}

// NewStrategyAppliedEvent creates a new StrategyAppliedEvent
func NewStrategyAppliedEvent(gameID, strategy, announcement string) *StrategyAppliedEvent {
	return &StrategyAppliedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeStrategyApplied,
			Time:      time.Now(),
			Game:      gameID,
		},
		Strategy:     strategy,
		Announcement: announcement,
	}
}

// PlayerObservedEvent is published when a coach checks on a player
type PlayerObservedEvent struct {
	BaseEvent
	PlayerID int
	HasBall  bool
}

// NewPlayerObservedEvent creates a new PlayerObservedEvent
func NewPlayerObservedEvent(gameID string, playerID int, hasBall bool) *PlayerObservedEvent {
	return &PlayerObservedEvent{
		BaseEvent: BaseEvent{
			EventType: TypePlayerObserved,
			Time:      time.Now(),
			Game:      gameID,
		},
		PlayerID: playerID,
		HasBall:  hasBall,
	}
}
