package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpeo/attendbot/errors"
	"github.com/tpeo/attendbot/services/logger"
)

func newTestResolver(store *fakeStore) *Resolver {
	return NewResolver(ResolverOptions{
		Store:       store,
		UsersTable:  "Users",
		EventsTable: "Events",
		Logger:      logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func TestResolveUser_Found(t *testing.T) {
	store := newFakeStore(map[string][][]string{
		"Users": {
			{"Name", "Slack ID"},
			{"Jane Doe", "U123"},
		},
	})
	resolver := newTestResolver(store)

	user, err := resolver.ResolveUser(context.Background(), "U123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "U123", user.Handle)
}

func TestResolveUser_NotFoundIsNotAnError(t *testing.T) {
	store := newFakeStore(map[string][][]string{
		"Users": {{"Name", "Slack ID"}},
	})
	resolver := newTestResolver(store)

	user, err := resolver.ResolveUser(context.Background(), "U999")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestResolveUser_StoreFaultPropagates(t *testing.T) {
	store := newFakeStore(map[string][][]string{})
	store.failing = true
	resolver := newTestResolver(store)

	_, err := resolver.ResolveUser(context.Background(), "U123")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeResolutionFailed))
}

func TestResolveEvent_Found(t *testing.T) {
	store := newFakeStore(map[string][][]string{
		"Events": {
			{"Name", "Abbreviation", "Day", "Start Time"},
			{"Code Social", "cs", "Monday", "6:00 PM"},
		},
	})
	resolver := newTestResolver(store)

	event, err := resolver.ResolveEvent(context.Background(), "cs")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Code Social", event.Name)
	assert.Equal(t, "Monday", event.Weekday)
	assert.Equal(t, "6:00 PM", event.Start)
}

func TestUserExists(t *testing.T) {
	store := newFakeStore(map[string][][]string{
		"Users": {
			{"Name", "Slack ID"},
			{"Jane Doe", "U123"},
		},
	})
	resolver := newTestResolver(store)

	exists, err := resolver.UserExists(context.Background(), "U123")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = resolver.UserExists(context.Background(), "U999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListEvents_SkipsHeader(t *testing.T) {
	store := newFakeStore(map[string][][]string{
		"Events": {
			{"Name", "Abbreviation", "Day", "Start Time"},
			{"Code Social", "cs", "Monday", "6:00 PM"},
			{"General Meeting", "gbm", "Wednesday", "7:00 PM"},
		},
	})
	resolver := newTestResolver(store)

	events, err := resolver.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "cs", events[0].Abbrev)
	assert.Equal(t, "gbm", events[1].Abbrev)
}
