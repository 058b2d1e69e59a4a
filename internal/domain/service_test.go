package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRegistry struct {
	activities map[string]Activity
	signups    []string
}

func (s *stubRegistry) List(ctx context.Context) (map[string]Activity, error) {
	return s.activities, nil
}

func (s *stubRegistry) Signup(ctx context.Context, activity, email string) error {
	if _, ok := s.activities[activity]; !ok {
		return ErrActivityNotFound
	}
	s.signups = append(s.signups, activity+":"+email)
	return nil
}

func TestServicePassesThroughList(t *testing.T) {
	stub := &stubRegistry{activities: map[string]Activity{
		"Chess Club": {Description: "chess", MaxParticipants: 12},
	}}
	service := NewService(stub)

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	require.Contains(t, activities, "Chess Club")
}

func TestServiceSignupPropagatesNotFound(t *testing.T) {
	service := NewService(&stubRegistry{activities: map[string]Activity{}})

	err := service.SignupForActivity(context.Background(), "Nonexistent Club", "x@y.edu")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestServiceSignupRecordsEntry(t *testing.T) {
	stub := &stubRegistry{activities: map[string]Activity{"Art Club": {}}}
	service := NewService(stub)

	require.NoError(t, service.SignupForActivity(context.Background(), "Art Club", "x@y.edu"))
	require.Equal(t, []string{"Art Club:x@y.edu"}, stub.signups)
}
