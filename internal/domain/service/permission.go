package service

import (
	"context"
)

// PermissionState mirrors the notification permission states of the
// platform: undecided, granted, or denied/dismissed.
type PermissionState string

const (
	PermissionDefault PermissionState = "default"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

// PermissionSource answers and, when undecided, requests notification
// permission. Request suspends until the user decides; a dismissed prompt
// reports PermissionDefault again.
type PermissionSource interface {
	State() PermissionState
	Request(ctx context.Context) (PermissionState, error)
}
