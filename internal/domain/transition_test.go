package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_ManualTriggersAllowedFromAnyStatus(t *testing.T) {
	manual := []TransitionTrigger{TriggerCheckIn, TriggerNoShow, TriggerCancel}

	for _, trigger := range manual {
		for _, current := range AllStatuses {
			next, err := Transition(current, trigger)
			require.NoError(t, err, "trigger=%s from=%s", trigger, current)

			target, err := trigger.Target()
			require.NoError(t, err)
			assert.Equal(t, target, next)
		}
	}
}

func TestTransition_ClientTriggersFromPending(t *testing.T) {
	next, err := Transition(StatusPending, TriggerConfirm)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, next)

	next, err = Transition(StatusPending, TriggerReschedule)
	require.NoError(t, err)
	assert.Equal(t, StatusRescheduleRequested, next)
}

func TestTransition_ClientTriggersRejectedFromTerminalStatuses(t *testing.T) {
	for _, current := range TerminalStatuses {
		_, err := Transition(current, TriggerConfirm)
		assert.ErrorIs(t, err, ErrTransitionNotAllowed, "from=%s", current)

		_, err = Transition(current, TriggerReschedule)
		assert.ErrorIs(t, err, ErrTransitionNotAllowed, "from=%s", current)
	}
}

func TestTransition_ClientTriggersAllowedFromNonTerminalStatuses(t *testing.T) {
	// confirmed и reschedule_requested не терминальные: повторный переход разрешен
	next, err := Transition(StatusConfirmed, TriggerReschedule)
	require.NoError(t, err)
	assert.Equal(t, StatusRescheduleRequested, next)

	next, err = Transition(StatusRescheduleRequested, TriggerConfirm)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, next)
}

func TestTransition_UnknownTrigger(t *testing.T) {
	_, err := Transition(StatusPending, TransitionTrigger("promote"))
	assert.ErrorIs(t, err, ErrUnknownTrigger)
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid())
	}
	assert.False(t, AppointmentStatus("archived").IsValid())
}
