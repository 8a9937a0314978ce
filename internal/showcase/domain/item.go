package domain

import "errors"

// ErrOwnershipDenied is returned when the caller's login contradicts the
// owner recorded by the warehouse.
var ErrOwnershipDenied = errors.New("caller does not own the referenced warehouse item")

// ResolvedItem is the part of a warehouse item the publish workflow needs.
// It lives for one request and is never persisted.
type ResolvedItem struct {
	ID         string
	OwnerLogin string // empty when the warehouse has no recorded owner
}

// Decision is the outcome of an ownership check.
type Decision int

const (
	Allow Decision = iota
	Deny
)

func (d Decision) String() string {
	if d == Deny {
		return "deny"
	}
	return "allow"
}

// Authorize compares the caller's login with the item's owner.
//
// A missing caller login bypasses the check entirely. System jobs and
// unauthenticated callers publish through this path, so anyone who can reach
// the endpoint can list any item by omitting ownerLogin. Keep that in mind
// before exposing the route beyond the internal network.
func Authorize(item ResolvedItem, callerLogin string) Decision {
	if callerLogin == "" {
		return Allow
	}
	if item.OwnerLogin == "" {
		return Allow
	}
	if item.OwnerLogin != callerLogin {
		return Deny
	}
	return Allow
}
