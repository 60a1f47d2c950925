package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatus_IsValid(t *testing.T) {
	for _, s := range []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed} {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, TicketStatus("pending").IsValid())
	assert.False(t, TicketStatus("").IsValid())
	assert.False(t, TicketStatus("OPEN").IsValid(), "status values are lowercase")
}

func TestNewTicketStatus(t *testing.T) {
	s, err := NewTicketStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = NewTicketStatus("in progress")
	assert.Error(t, err)
}

func TestTicketStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())
}

func TestPriority_IsImportant(t *testing.T) {
	assert.False(t, PriorityLow.IsImportant())
	assert.False(t, PriorityMedium.IsImportant())
	assert.True(t, PriorityHigh.IsImportant())
	assert.True(t, PriorityUrgent.IsImportant())
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("urgent")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)

	_, err = NewPriority("critical")
	assert.Error(t, err)
}
