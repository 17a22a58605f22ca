package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ealanisln/vetify-api/internal/models"
)

func TestBlocksSlot(t *testing.T) {
	for _, s := range []string{StatusScheduled, StatusConfirmed, StatusCompleted} {
		assert.True(t, BlocksSlot(s), s)
	}
	for _, s := range NonBlockingStatuses {
		assert.False(t, BlocksSlot(s), s)
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

	a := &models.Appointment{Status: StatusScheduled}
	require.NoError(t, Cancel(a, StatusCancelledClinic, now))
	assert.Equal(t, StatusCancelledClinic, a.Status)
	require.NotNil(t, a.CancelledAt)
	assert.True(t, a.CancelledAt.Equal(now))

	assert.ErrorIs(t, Cancel(a, StatusCancelledClient, now), ErrNotOpen)
	assert.ErrorIs(t, Cancel(&models.Appointment{Status: StatusConfirmed}, StatusCompleted, now), ErrInvalidStatus)
}

func TestComplete_And_NoShow(t *testing.T) {
	now := time.Now()

	a := &models.Appointment{Status: StatusConfirmed}
	require.NoError(t, Complete(a, now))
	assert.Equal(t, StatusCompleted, a.Status)
	assert.ErrorIs(t, MarkNoShow(a), ErrNotOpen)

	b := &models.Appointment{Status: StatusScheduled}
	require.NoError(t, MarkNoShow(b))
	assert.Equal(t, StatusNoShow, b.Status)
	assert.ErrorIs(t, Complete(b, now), ErrNotOpen)
}

func TestResolveRequest(t *testing.T) {
	r := &models.AppointmentRequest{Status: RequestPending}
	require.NoError(t, ResolveRequest(r, RequestRejected))
	assert.Equal(t, RequestRejected, r.Status)

	assert.ErrorIs(t, ResolveRequest(r, RequestConfirmed), ErrRequestNotPending)
}
