package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerOrdering(t *testing.T) {
	var s scheduler
	s.schedule(10, eventRespawn, nil)
	s.schedule(5, eventPhaserResolve, nil)
	s.schedule(10, eventPhaserResolve, nil)
	s.schedule(7, eventRespawn, nil)

	assert.Nil(t, s.due(4))
	assert.Equal(t, 4, s.pending())

	got := s.due(7)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(5), got[0].readyAt)
	assert.Equal(t, uint64(7), got[1].readyAt)

	got = s.due(100)
	require.Len(t, got, 2)
	assert.Equal(t, eventRespawn, got[0].kind, "same tick keeps scheduling order")
	assert.Equal(t, eventPhaserResolve, got[1].kind)
	assert.Zero(t, s.pending())
}

func TestSchedulerCancel(t *testing.T) {
	var s scheduler
	s.schedule(5, eventPhaserResolve, nil)
	s.schedule(6, eventRespawn, nil)
	s.schedule(9, eventPhaserResolve, nil)

	assert.Equal(t, 2, s.cancel(eventPhaserResolve))
	assert.Zero(t, s.cancel(eventPhaserResolve))

	got := s.due(100)
	require.Len(t, got, 1)
	assert.Equal(t, eventRespawn, got[0].kind)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "phaser_resolve", eventPhaserResolve.String())
	assert.Equal(t, "respawn", eventRespawn.String())
	assert.Equal(t, "unknown", eventKind(9).String())
}
