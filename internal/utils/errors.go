// internal/utils/errors.go
package utils

import (
	"errors"
)

/*
   Sentinel errors for the tenancy domain.
   Controllers can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyMember    = errors.New("already_member")
	ErrAlreadyRequested = errors.New("already_requested")
	ErrPropertyFull     = errors.New("property_full")
	ErrCapacityExceeded = errors.New("capacity_exceeded")
	ErrNotAMember       = errors.New("not_a_member")
	ErrNotOwner         = errors.New("not_owner")
	ErrRoleAlreadySet   = errors.New("role_already_set")
)
