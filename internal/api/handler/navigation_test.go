package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPNavigator_RecordsRequests(t *testing.T) {
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	nav := &HTTPNavigator{
		generateID: func() (string, error) { return "abc123", nil },
		now:        func() time.Time { return fixed },
	}

	ctx, rec := WithNavigationRecorder(context.Background())
	require.NoError(t, nav.Navigate(ctx, "/admin/dashboard"))
	require.NoError(t, nav.Navigate(ctx, "/admin/dashboard"))

	requests := rec.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "abc123", requests[0].ID)
	assert.Equal(t, "/admin/dashboard", requests[1].Path)
	assert.Equal(t, fixed, requests[1].RequestedAt)
}

func TestHTTPNavigator_WithoutRecorder(t *testing.T) {
	err := NewHTTPNavigator().Navigate(context.Background(), "/admin/dashboard")
	assert.ErrorIs(t, err, ErrNoNavigationContext)
}

func TestHTTPNavigator_IDFailure(t *testing.T) {
	idErr := errors.New("sem entropia")
	nav := &HTTPNavigator{
		generateID: func() (string, error) { return "", idErr },
		now:        time.Now,
	}

	ctx, rec := WithNavigationRecorder(context.Background())
	assert.ErrorIs(t, nav.Navigate(ctx, "/admin/dashboard"), idErr)
	assert.Empty(t, rec.Requests())
}
