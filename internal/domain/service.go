package domain

import "context"

// Registry captures the storage operations the service needs.
type Registry interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activity, email string) error
}

// Service orchestrates activity workflows.
type Service struct {
	registry Registry
}

// NewService constructs a Service.
func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// ListActivities returns the full registry snapshot, no filtering or pagination.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.registry.List(ctx)
}

// SignupForActivity appends the email to the activity's roster. The only
// failure path is an unknown activity name; duplicate emails and rosters
// beyond capacity are accepted.
func (s *Service) SignupForActivity(ctx context.Context, activity, email string) error {
	return s.registry.Signup(ctx, activity, email)
}
