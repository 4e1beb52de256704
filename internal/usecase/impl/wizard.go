package impl

import (
	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
)

// WizardState is one step of the geofence editing flow. The flow is a strict
// state machine: a draft cannot be configured before its center is placed,
// and cannot be saved before it is fully configured.
type WizardState string

const (
	// WizardIdle is the initial state before a draft exists.
	WizardIdle WizardState = "idle"
	// WizardMapPendingClick means a draft exists but no center has been placed.
	WizardMapPendingClick WizardState = "map_pending_click"
	// WizardConfigured means the draft has a center and valid settings.
	WizardConfigured WizardState = "configured"
	// WizardSaving means the draft is being persisted.
	WizardSaving WizardState = "saving"
	// WizardSaved is the terminal success state.
	WizardSaved WizardState = "saved"
	// WizardSaveFailed is reached when persistence fails; the draft survives
	// so the save can be retried.
	WizardSaveFailed WizardState = "save_failed"
)

// GeofenceWizard drives a geofence draft through the editing flow, enforcing
// the step order and surfacing the first validation error of each step.
type GeofenceWizard struct {
	state WizardState
	draft entity.Geofence
}

// NewGeofenceWizard returns a wizard in the idle state.
func NewGeofenceWizard() *GeofenceWizard {
	return &GeofenceWizard{state: WizardIdle}
}

// State returns the current wizard state.
func (w *GeofenceWizard) State() WizardState {
	return w.state
}

// Draft returns the draft accumulated so far.
func (w *GeofenceWizard) Draft() entity.Geofence {
	return w.draft
}

// Begin opens a fresh draft. Valid only from idle or a failed save.
func (w *GeofenceWizard) Begin() error {
	switch w.state {
	case WizardIdle, WizardSaveFailed:
		w.draft = entity.Geofence{}
		w.state = WizardMapPendingClick

		return nil
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("a draft is already in progress")
	}
}

// PlaceCenter records the map click that fixes the zone center. The center
// can be re-placed while the draft is unsaved, but never after.
func (w *GeofenceWizard) PlaceCenter(latitude, longitude float64) error {
	switch w.state {
	case WizardMapPendingClick, WizardConfigured:
		w.draft.CenterLatitude = latitude
		w.draft.CenterLongitude = longitude
		if w.state == WizardMapPendingClick {
			w.state = WizardConfigured
		}

		return nil
	default:
		return domainerrors.ErrGeofenceCenterRequired.WrapMessage("center can only be placed on an open draft")
	}
}

// Configure applies name, type, radius and the enforcement flags. The center
// must already be placed.
func (w *GeofenceWizard) Configure(name string, geofenceType entity.GeofenceType, radius int, enforceClockIn, enforceClockOut, autoClockOut, alertOnExit bool) error {
	if w.state == WizardMapPendingClick {
		return domainerrors.ErrGeofenceCenterRequired
	}
	if w.state != WizardConfigured {
		return domainerrors.ErrValidationFailed.WrapMessage("no open draft to configure")
	}

	if name == "" {
		return domainerrors.ErrGeofenceNameRequired
	}
	if !geofenceType.IsValid() {
		return domainerrors.ErrGeofenceTypeInvalid
	}
	if radius < entity.GeofenceMinRadius || radius > entity.GeofenceMaxRadius {
		return domainerrors.ErrGeofenceRadiusOutOfRange
	}

	w.draft.Name = name
	w.draft.GeofenceType = geofenceType
	w.draft.Radius = radius
	w.draft.EnforceClockIn = enforceClockIn
	w.draft.EnforceClockOut = enforceClockOut
	w.draft.AutoClockOut = autoClockOut
	w.draft.AlertOnUnexpectedExit = alertOnExit
	w.draft.IsActive = true

	return nil
}

// BeginSave transitions into the saving state. The draft must be configured.
func (w *GeofenceWizard) BeginSave() error {
	if w.state != WizardConfigured {
		return domainerrors.ErrValidationFailed.WrapMessage("draft is not ready to save")
	}
	if w.draft.Name == "" {
		return domainerrors.ErrGeofenceNameRequired
	}
	w.state = WizardSaving

	return nil
}

// CompleteSave marks the flow finished after successful persistence.
func (w *GeofenceWizard) CompleteSave() {
	if w.state == WizardSaving {
		w.state = WizardSaved
	}
}

// FailSave records a failed persistence attempt, keeping the draft for retry.
func (w *GeofenceWizard) FailSave() {
	if w.state == WizardSaving {
		w.state = WizardSaveFailed
	}
}
