package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotificationsExpireAfterTTL(t *testing.T) {
	center := NewCenter(3*time.Second, zap.NewNop())

	center.Success("Employee added successfully")
	center.Error("Error loading employees")

	now := time.Now()
	active := center.Active(now)
	require.Len(t, active, 2)
	assert.Equal(t, KindSuccess, active[0].Kind)
	assert.Equal(t, KindError, active[1].Kind)
	assert.NotEmpty(t, active[0].ID)
	assert.NotEqual(t, active[0].ID, active[1].ID)

	// Still visible just inside the window, gone just past it.
	assert.Len(t, center.Active(now.Add(2*time.Second)), 2)
	assert.Empty(t, center.Active(now.Add(4*time.Second)))
}

func TestSweepEvictsOnlyExpiredEntries(t *testing.T) {
	center := NewCenter(3*time.Second, zap.NewNop())

	center.Info("first")
	past := time.Now()
	center.Sweep(past.Add(4 * time.Second))
	assert.Empty(t, center.Active(past))

	center.Info("second")
	center.Sweep(time.Now())
	assert.Len(t, center.Active(time.Now()), 1)
}

func TestActiveReturnsEmissionOrder(t *testing.T) {
	center := NewCenter(time.Minute, zap.NewNop())

	center.Success("one")
	center.Info("two")
	center.Error("three")

	active := center.Active(time.Now())
	require.Len(t, active, 3)
	assert.Equal(t, "one", active[0].Message)
	assert.Equal(t, "two", active[1].Message)
	assert.Equal(t, "three", active[2].Message)
}
