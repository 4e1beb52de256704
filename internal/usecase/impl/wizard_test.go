package impl

import (
	"testing"

	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeofenceWizard_HappyPath(t *testing.T) {
	wizard := NewGeofenceWizard()
	assert.Equal(t, WizardIdle, wizard.State())

	require.NoError(t, wizard.Begin())
	assert.Equal(t, WizardMapPendingClick, wizard.State())

	require.NoError(t, wizard.PlaceCenter(40.7128, -74.0060))
	assert.Equal(t, WizardConfigured, wizard.State())

	require.NoError(t, wizard.Configure("Main Office", entity.GeofenceTypeOffice, 150, true, true, false, true))
	require.NoError(t, wizard.BeginSave())
	assert.Equal(t, WizardSaving, wizard.State())

	wizard.CompleteSave()
	assert.Equal(t, WizardSaved, wizard.State())

	draft := wizard.Draft()
	assert.Equal(t, "Main Office", draft.Name)
	assert.Equal(t, entity.GeofenceTypeOffice, draft.GeofenceType)
	assert.Equal(t, 150, draft.Radius)
	assert.Equal(t, 40.7128, draft.CenterLatitude)
	assert.Equal(t, -74.0060, draft.CenterLongitude)
	assert.True(t, draft.EnforceClockIn)
	assert.True(t, draft.EnforceClockOut)
	assert.False(t, draft.AutoClockOut)
	assert.True(t, draft.AlertOnUnexpectedExit)
	assert.True(t, draft.IsActive)
}

func TestGeofenceWizard_ConfigureBeforeCenter(t *testing.T) {
	wizard := NewGeofenceWizard()
	require.NoError(t, wizard.Begin())

	err := wizard.Configure("Main Office", entity.GeofenceTypeOffice, 150, false, false, false, false)
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceCenterRequired)
}

func TestGeofenceWizard_SaveBeforeConfigure(t *testing.T) {
	wizard := NewGeofenceWizard()
	require.NoError(t, wizard.Begin())

	err := wizard.BeginSave()
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGeofenceWizard_BeginTwice(t *testing.T) {
	wizard := NewGeofenceWizard()
	require.NoError(t, wizard.Begin())

	err := wizard.Begin()
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGeofenceWizard_RecenterWhileUnsaved(t *testing.T) {
	wizard := NewGeofenceWizard()
	require.NoError(t, wizard.Begin())
	require.NoError(t, wizard.PlaceCenter(10, 20))

	// A second click moves the center as long as the draft is unsaved.
	require.NoError(t, wizard.PlaceCenter(30, 40))

	draft := wizard.Draft()
	assert.Equal(t, float64(30), draft.CenterLatitude)
	assert.Equal(t, float64(40), draft.CenterLongitude)
}

func TestGeofenceWizard_PlaceCenterWithoutDraft(t *testing.T) {
	wizard := NewGeofenceWizard()

	err := wizard.PlaceCenter(10, 20)
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceCenterRequired)
}

func TestGeofenceWizard_ConfigureValidation(t *testing.T) {
	newConfigured := func(t *testing.T) *GeofenceWizard {
		t.Helper()
		wizard := NewGeofenceWizard()
		require.NoError(t, wizard.Begin())
		require.NoError(t, wizard.PlaceCenter(40.0, -70.0))

		return wizard
	}

	t.Run("empty name", func(t *testing.T) {
		err := newConfigured(t).Configure("", entity.GeofenceTypeOffice, 100, false, false, false, false)
		assert.ErrorIs(t, err, domainerrors.ErrGeofenceNameRequired)
	})

	t.Run("unknown type", func(t *testing.T) {
		err := newConfigured(t).Configure("Site", entity.GeofenceType("spaceship"), 100, false, false, false, false)
		assert.ErrorIs(t, err, domainerrors.ErrGeofenceTypeInvalid)
	})

	t.Run("radius too small", func(t *testing.T) {
		err := newConfigured(t).Configure("Site", entity.GeofenceTypeOffice, 9, false, false, false, false)
		assert.ErrorIs(t, err, domainerrors.ErrGeofenceRadiusOutOfRange)
	})

	t.Run("radius too large", func(t *testing.T) {
		err := newConfigured(t).Configure("Site", entity.GeofenceTypeOffice, 1001, false, false, false, false)
		assert.ErrorIs(t, err, domainerrors.ErrGeofenceRadiusOutOfRange)
	})

	t.Run("radius at bounds", func(t *testing.T) {
		require.NoError(t, newConfigured(t).Configure("Site", entity.GeofenceTypeOffice, 10, false, false, false, false))
		require.NoError(t, newConfigured(t).Configure("Site", entity.GeofenceTypeOffice, 1000, false, false, false, false))
	})
}

func TestGeofenceWizard_RetryAfterFailedSave(t *testing.T) {
	wizard := NewGeofenceWizard()
	require.NoError(t, wizard.Begin())
	require.NoError(t, wizard.PlaceCenter(40.0, -70.0))
	require.NoError(t, wizard.Configure("Site", entity.GeofenceTypeConstructionSite, 200, true, false, true, false))
	require.NoError(t, wizard.BeginSave())

	wizard.FailSave()
	assert.Equal(t, WizardSaveFailed, wizard.State())

	// A failed save keeps the flow restartable.
	require.NoError(t, wizard.Begin())
	assert.Equal(t, WizardMapPendingClick, wizard.State())
	assert.Empty(t, wizard.Draft().Name)
}
