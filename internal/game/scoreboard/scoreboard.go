// Package scoreboard keeps the game score and notifies registered observers
// whenever it changes.
package scoreboard

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/courtsim/internal/game/events"
)

// Scoreboard holds the home and away scores. Every UpdateScore call notifies
// all observers, in registration order, before it returns.
type Scoreboard struct {
	// notifyMu serialises UpdateScore calls; mu guards the fields below it
	notifyMu sync.Mutex

	mu     sync.Mutex
	gameID string
	home   int
	away   int
	bus    *events.EventBus
	logger zerolog.Logger
}

var (
	defaultBoard *Scoreboard
	defaultOnce  sync.Once
)

// New creates a scoreboard with its own observer registry
func New(logger zerolog.Logger) *Scoreboard {
	return &Scoreboard{
		gameID: uuid.New().String(),
		bus:    events.NewEventBusWithLogger(logger),
		logger: logger.With().Str("component", "scoreboard").Logger(),
	}
}

// Default returns the process-wide scoreboard, creating it on first use
func Default() *Scoreboard {
	defaultOnce.Do(func() {
		defaultBoard = New(log.Logger)
	})
	return defaultBoard
}

// GameID returns the identifier stamped on published events
func (s *Scoreboard) GameID() string {
	return s.gameID
}

// AddObserver registers an observer. Adding the same observer twice keeps
// its original position.
func (s *Scoreboard) AddObserver(observer events.Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bus.Subscribe(observer)
	s.logger.Debug().
		Str("observer_id", observer.ID()).
		Int("observers", s.bus.GetSubscriberCount()).
		Msg("Observer registered")
}

// RemoveObserver unregisters an observer. Unknown observers are ignored.
func (s *Scoreboard) RemoveObserver(observer events.Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bus.Unsubscribe(observer.ID())
	s.logger.Debug().
		Str("observer_id", observer.ID()).
		Int("observers", s.bus.GetSubscriberCount()).
		Msg("Observer removed")
}

// UpdateScore replaces both scores and notifies every observer. Observers
// may read the board with Score but must not call UpdateScore.
func (s *Scoreboard) UpdateScore(home, away int) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.home = home
	s.away = away
	s.mu.Unlock()

	s.logger.Info().
		Int("home", home).
		Int("away", away).
		Msg("Score updated")

	s.bus.Publish(events.NewScoreUpdatedEvent(s.gameID, home, away))
}

// Score returns the current home and away scores
func (s *Scoreboard) Score() (home, away int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.home, s.away
}

// ObserverCount returns the number of registered observers
func (s *Scoreboard) ObserverCount() int {
	return s.bus.GetSubscriberCount()
}
