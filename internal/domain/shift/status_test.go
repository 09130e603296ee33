package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPlanned.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusDone))

	// No backward or skipping moves.
	assert.False(t, StatusPlanned.CanTransitionTo(StatusDone))
	assert.False(t, StatusInProgress.CanTransitionTo(StatusPlanned))
	assert.False(t, StatusDone.CanTransitionTo(StatusPlanned))
	assert.False(t, StatusDone.CanTransitionTo(StatusInProgress))
	assert.False(t, StatusDone.CanTransitionTo(StatusDone))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPlanned.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusDone.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPlanned.IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusDone.IsValid())
	assert.False(t, Status("cancelled").IsValid())
	assert.False(t, Status("").IsValid())
}
