// Package memory implements the repository interfaces with plain maps.
//
// This is the default backend: the platform deliberately keeps no state
// beyond process lifetime (sample data is re-seeded at startup), so a
// database is optional. Each entity kind gets its own map keyed by id plus
// its own monotonic counter. Counters only ever go up — deleting story 3
// never makes id 3 available again.
//
// CONCURRENCY:
// net/http serves each request on its own goroutine, so the maps need a
// lock. Contention is negligible for this workload, so one RWMutex for the
// whole store is enough; every operation holds it for the duration of a
// single map read or write, which keeps operations atomic with respect to
// each other.
//
// COPY DISCIPLINE:
// Every record is copied on the way in and on the way out. Callers can
// mutate what they get back without corrupting the store.
package memory

import (
	"sync"

	"github.com/athletemind/backend/internal/model"
)

// Store holds all four collections. It implements every repository
// interface; the server hands it out under each interface type.
type Store struct {
	mu sync.RWMutex

	users     map[int64]model.User
	resources map[int64]model.Resource
	stories   map[int64]model.Story
	contacts  map[int64]model.Contact

	nextUserID     int64
	nextResourceID int64
	nextStoryID    int64
	nextContactID  int64
}

// New creates an empty store. Counters start at 1 so the first record of
// each kind gets id 1.
func New() *Store {
	return &Store{
		users:          make(map[int64]model.User),
		resources:      make(map[int64]model.Resource),
		stories:        make(map[int64]model.Story),
		contacts:       make(map[int64]model.Contact),
		nextUserID:     1,
		nextResourceID: 1,
		nextStoryID:    1,
		nextContactID:  1,
	}
}
