package v1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenstudio/booking-service/internal/core/domain"
	logicv1 "github.com/zenstudio/booking-service/internal/logic/v1"
)

func newSessionService() (*logicv1.SessionService, *fakeSessionRepo, *fakeUserRepo) {
	sessions := newFakeSessionRepo()
	users := newFakeUserRepo()
	return logicv1.NewSessionService(sessions, users), sessions, users
}

func TestParticipate(t *testing.T) {
	ctx := context.Background()

	t.Run("adds the user to the participant set", func(t *testing.T) {
		svc, sessions, users := newSessionService()
		sessions.add(domain.Session{ID: 1, Name: "Morning flow"})
		users.add(domain.User{ID: 2, Email: "ana@studio.dev"})

		require.NoError(t, svc.Participate(ctx, 1, 2))

		stored, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, stored.Users)
	})

	t.Run("second subscribe is a client error, not idempotent success", func(t *testing.T) {
		svc, sessions, users := newSessionService()
		sessions.add(domain.Session{ID: 1, Name: "Morning flow"})
		users.add(domain.User{ID: 2, Email: "ana@studio.dev"})

		require.NoError(t, svc.Participate(ctx, 1, 2))
		err := svc.Participate(ctx, 1, 2)
		assert.ErrorIs(t, err, logicv1.ErrAlreadyParticipating)
	})

	t.Run("missing session", func(t *testing.T) {
		svc, _, users := newSessionService()
		users.add(domain.User{ID: 2, Email: "ana@studio.dev"})

		assert.ErrorIs(t, svc.Participate(ctx, 99, 2), logicv1.ErrNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, sessions, _ := newSessionService()
		sessions.add(domain.Session{ID: 1, Name: "Morning flow"})

		assert.ErrorIs(t, svc.Participate(ctx, 1, 99), logicv1.ErrNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		svc, sessions, _ := newSessionService()
		sessions.err = errStore

		assert.ErrorIs(t, svc.Participate(ctx, 1, 2), errStore)
	})
}

func TestNoLongerParticipate(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the user from the participant set", func(t *testing.T) {
		svc, sessions, _ := newSessionService()
		sessions.add(domain.Session{ID: 1, Name: "Morning flow", Users: []int64{2, 3}})

		require.NoError(t, svc.NoLongerParticipate(ctx, 1, 2))

		stored, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, stored.Users)
	})

	t.Run("not a participant", func(t *testing.T) {
		svc, sessions, _ := newSessionService()
		sessions.add(domain.Session{ID: 1, Name: "Morning flow"})

		err := svc.NoLongerParticipate(ctx, 1, 2)
		assert.ErrorIs(t, err, logicv1.ErrNotParticipating)
	})

	t.Run("missing session", func(t *testing.T) {
		svc, _, _ := newSessionService()

		assert.ErrorIs(t, svc.NoLongerParticipate(ctx, 99, 2), logicv1.ErrNotFound)
	})

	t.Run("does not require a user record, only list membership", func(t *testing.T) {
		svc, sessions, _ := newSessionService()
		// User 7 was deleted after subscribing; unsubscribe must still work.
		sessions.add(domain.Session{ID: 1, Name: "Morning flow", Users: []int64{7}})

		require.NoError(t, svc.NoLongerParticipate(ctx, 1, 7))

		stored, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, stored.Users)
	})
}

// The full walk-through: session 1 with no participants, user 2 exists.
func TestMembershipScenario(t *testing.T) {
	ctx := context.Background()
	svc, sessions, users := newSessionService()
	sessions.add(domain.Session{ID: 1, Name: "Morning flow"})
	users.add(domain.User{ID: 2, Email: "ana@studio.dev"})

	require.NoError(t, svc.Participate(ctx, 1, 2))
	stored, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, stored.Users)

	assert.ErrorIs(t, svc.Participate(ctx, 1, 2), logicv1.ErrAlreadyParticipating)

	require.NoError(t, svc.NoLongerParticipate(ctx, 1, 2))
	stored, err = svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, stored.Users)
}

// Subscribe then unsubscribe must return the participant set to its original
// state.
func TestMembershipRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, sessions, users := newSessionService()
	sessions.add(domain.Session{ID: 1, Name: "Morning flow", Users: []int64{5}})
	users.add(domain.User{ID: 2, Email: "ana@studio.dev"})

	require.NoError(t, svc.Participate(ctx, 1, 2))
	require.NoError(t, svc.NoLongerParticipate(ctx, 1, 2))

	stored, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, stored.Users)
}

func TestSessionCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns generated id", func(t *testing.T) {
		svc, _, _ := newSessionService()

		created, err := svc.Create(ctx, &domain.Session{
			Name: "Morning flow",
			Date: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("nil session", func(t *testing.T) {
		svc, _, _ := newSessionService()

		_, err := svc.Create(ctx, nil)
		assert.ErrorIs(t, err, logicv1.ErrInvalidSession)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _, _ := newSessionService()

		_, err := svc.Create(ctx, &domain.Session{Name: "   "})
		assert.ErrorIs(t, err, logicv1.ErrInvalidSession)
	})
}

func TestSessionUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces every field", func(t *testing.T) {
		svc, sessions, _ := newSessionService()
		sessions.add(domain.Session{ID: 1, Name: "Morning flow", Users: []int64{2}})

		_, err := svc.Update(ctx, 1, &domain.Session{Name: "Evening flow", Users: []int64{3}})
		require.NoError(t, err)

		stored, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Evening flow", stored.Name)
		assert.Equal(t, []int64{3}, stored.Users)
	})

	t.Run("missing session", func(t *testing.T) {
		svc, _, _ := newSessionService()

		_, err := svc.Update(ctx, 99, &domain.Session{Name: "Evening flow"})
		assert.ErrorIs(t, err, logicv1.ErrNotFound)
	})
}

func TestSessionDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes with participants still subscribed", func(t *testing.T) {
		svc, sessions, _ := newSessionService()
		sessions.add(domain.Session{ID: 1, Name: "Morning flow", Users: []int64{2, 3}})

		require.NoError(t, svc.Delete(ctx, 1))

		stored, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("missing session", func(t *testing.T) {
		svc, _, _ := newSessionService()

		assert.ErrorIs(t, svc.Delete(ctx, 99), logicv1.ErrNotFound)
	})
}

func TestSessionReads(t *testing.T) {
	ctx := context.Background()

	t.Run("getById on a missing id is an explicit absent result", func(t *testing.T) {
		svc, _, _ := newSessionService()

		stored, err := svc.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("findAll returns every session", func(t *testing.T) {
		svc, sessions, _ := newSessionService()
		sessions.add(domain.Session{ID: 1, Name: "Morning flow"})
		sessions.add(domain.Session{ID: 2, Name: "Evening flow"})

		all, err := svc.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
