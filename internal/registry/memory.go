// Package registry provides the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/extracurricular/internal/domain"
)

// InMemoryRegistry stores activities in process memory. It is populated from
// the seed set at construction and lives for the process lifetime; restarting
// the process is the only way back to the seed state.
type InMemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryRegistry constructs a registry populated with the seed activities.
func NewInMemoryRegistry() *InMemoryRegistry {
	r := &InMemoryRegistry{activities: make(map[string]domain.Activity)}
	for name, activity := range seedActivities() {
		r.activities[name] = activity
	}
	return r
}

// List returns a snapshot of the full registry. Rosters are copied so callers
// cannot mutate shared state through the returned map.
func (r *InMemoryRegistry) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		roster := make([]string, len(activity.Participants))
		copy(roster, activity.Participants)
		activity.Participants = roster
		out[name] = activity
	}
	return out, nil
}

// Signup appends the email to the named activity's roster, keeping signup
// order. There is no uniqueness check and no capacity check.
func (r *InMemoryRegistry) Signup(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// Len reports how many activities the registry holds.
func (r *InMemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}
