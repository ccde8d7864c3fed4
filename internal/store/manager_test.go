package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/axox-storefront/internal/common"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(time.Hour, common.Discard())

	id, s := m.Create()
	require.NotEmpty(t, id)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(id)
	require.NoError(t, err)
	assert.Same(t, s, got)

	m.End(id)
	_, err = m.Get(id)
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestManagerSweep(t *testing.T) {
	m := NewManager(time.Minute, common.Discard())

	staleID, stale := m.Create()
	freshID, _ := m.Create()
	stale.lastTouched = time.Now().Add(-2 * time.Minute)

	removed := m.Sweep()
	assert.Equal(t, 1, removed)

	_, err := m.Get(staleID)
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
	_, err = m.Get(freshID)
	assert.NoError(t, err)
}

func TestManagerGetKeepsSessionAlive(t *testing.T) {
	m := NewManager(time.Minute, common.Discard())

	id, s := m.Create()
	s.lastTouched = time.Now().Add(-50 * time.Second)

	_, err := m.Get(id)
	require.NoError(t, err)

	// Past the ttl measured from creation, but within it from the read.
	assert.Equal(t, 0, m.sweepAt(time.Now().Add(30*time.Second)))
	_, err = m.Get(id)
	assert.NoError(t, err)
}

func TestManagerDefaultTTL(t *testing.T) {
	m := NewManager(0, nil)
	assert.Equal(t, DefaultSessionTTL, m.ttl)
}
