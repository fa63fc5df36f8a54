package db

import "errors"

// Database is the aggregate of all entity repositories.
//
// Handlers never receive a Database; each handler is given only the
// interface(s) it needs, so tests can mock them one by one.
type Database interface {
	Blog() BlogInterface
	Properties() PropertyInterface
	Tasks() TaskInterface
	Pricing() PricingInterface
	Invites() InviteInterface
	Hero() HeroInterface
	Company() CompanyInterface
	Links() LinkInterface
	Users() UserInterface
	Close() error
}

// requested record does not exist.
var ErrMissing = errors.New("missing record")

// write would break a uniqueness constraint (slug, listing number, email, invite code).
var ErrConflict = errors.New("conflicting record")

// guarded state transition was refused because the record is not in the
// required state (e.g. approving a price request that is no longer PENDING,
// redeeming an exhausted invite).
var ErrInvalidState = errors.New("record is not in a state allowing this operation")
