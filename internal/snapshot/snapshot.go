package snapshot

import (
	"time"

	"github.com/emberlane/gauntlet/internal/random"
)

// Run is the inbound contract for the run summary a snapshot captures.
type Run struct {
	ID     string
	Wins   int
	Losses int
	State  []byte
}

// Snapshot is a frozen, matchable summary of one player's run.
type Snapshot struct {
	ID        string
	PlayerID  string
	RunID     string
	Wins      int
	Losses    int
	Rating    float64
	State     []byte
	CreatedAt time.Time
	SizeBytes int
}

// New captures a snapshot of the run for the given player.
//
// The opaque run state is carried only when the config asks for it; the
// original footprint is always recorded in SizeBytes so pool statistics
// stay meaningful when state is elided.
func New(run Run, playerID string, rating float64, cfg Config, now time.Time) (Snapshot, error) {
	id, err := random.NewRandomID()
	if err != nil {
		return Snapshot{}, err
	}

	state := []byte{}
	if cfg.IncludeFullState {
		state = make([]byte, len(run.State))
		copy(state, run.State)
	}

	return Snapshot{
		ID:        id,
		PlayerID:  playerID,
		RunID:     run.ID,
		Wins:      run.Wins,
		Losses:    run.Losses,
		Rating:    rating,
		State:     state,
		CreatedAt: now,
		SizeBytes: len(run.State),
	}, nil
}

// IsExpired reports whether the snapshot has outlived the configured expiry
// at the given instant.
func IsExpired(s Snapshot, cfg Config, now time.Time) bool {
	return now.Sub(s.CreatedAt) > cfg.Expiry
}
