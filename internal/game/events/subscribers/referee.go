package subscribers

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/mitchelldurbincs/courtsim/internal/game/events"
)

// Referee watches the scoreboard and announces every score it is told about.
type Referee struct {
	id   string
	name string
	out  io.Writer

	mu            sync.Mutex
	home, away    int
	notifications int
}

// NewReferee creates a referee that writes its announcements to out
func NewReferee(name string, out io.Writer) *Referee {
	if out == nil {
		out = io.Discard
	}
	return &Referee{
		id:   "referee-" + uuid.New().String(),
		name: name,
		out:  out,
	}
}

// ID returns the referee's unique identifier
func (r *Referee) ID() string {
	return r.id
}

// Name returns the display name
func (r *Referee) Name() string {
	return r.name
}

// InterestedIn reports whether the referee cares about the event type
func (r *Referee) InterestedIn(eventType string) bool {
	return eventType == events.TypeScoreUpdated
}

// HandleEvent records and announces a score update
func (r *Referee) HandleEvent(event events.Event) {
	e, ok := event.(*events.ScoreUpdatedEvent)
	if !ok {
		return
	}

	r.mu.Lock()
	r.home, r.away = e.Home, e.Away
	r.notifications++
	r.mu.Unlock()

	fmt.Fprintf(r.out, "Referee %s: Home %d - Away %d\n", r.name, e.Home, e.Away)
}

// LastScore returns the most recent score received. ok is false until the
// first notification arrives.
func (r *Referee) LastScore() (home, away int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.home, r.away, r.notifications > 0
}

// Notifications returns how many score updates the referee has received
func (r *Referee) Notifications() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notifications
}
