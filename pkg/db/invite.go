package db

import (
	"context"
	"crypto/rand"
	"time"

	"gorm.io/datatypes"
)

type OwnerInvite struct {
	ID          string                      `json:"id" gorm:"type:uuid;primaryKey"`
	Code        string                      `json:"code" gorm:"uniqueIndex;not null"`
	PropertyIDs datatypes.JSONSlice[string] `json:"propertyIds"`
	MaxUses     int                         `json:"maxUses" gorm:"default:1"`
	UsedCount   int                         `json:"usedCount"`
	ExpiresAt   time.Time                   `json:"expiresAt"`
	Active      bool                        `json:"active" gorm:"default:true"`
	CreatedBy   string                      `json:"createdBy" gorm:"type:uuid"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// Redeemable reports whether the invite can still be redeemed at now.
func (i *OwnerInvite) Redeemable(now time.Time) bool {
	return i.Active && now.Before(i.ExpiresAt) && i.UsedCount < i.MaxUses
}

// base32 without 0/O, 1/I/L and vowels, to keep codes phone-readable and
// free of accidental words.
const inviteAlphabet = "23456789BCDFGHJKMNPQRSTVWXYZ"

// NewInviteCode mints an XXXX-XXXX code.
func NewInviteCode() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure is not recoverable
	}
	code := make([]byte, 9)
	for i, b := range buf {
		pos := i
		if i >= 4 {
			pos++
		}
		code[pos] = inviteAlphabet[int(b)%len(inviteAlphabet)]
	}
	code[4] = '-'
	return string(code)
}

type InviteFindQuery struct {
	Active  *bool
	Page    int
	PerPage int
}

type InviteInterface interface {
	Find(ctx context.Context, q InviteFindQuery) ([]OwnerInvite, int64, error)
	Get(ctx context.Context, id string) (*OwnerInvite, error)
	Register(ctx context.Context, invite *OwnerInvite) error

	// Deactivate clears the Active flag. The invite record stays for audit.
	Deactivate(ctx context.Context, id string) error

	// Redeem validates the code and increments UsedCount atomically. The
	// increment is a guarded UPDATE (used_count < max_uses), so concurrent
	// redemptions cannot exceed MaxUses; refused attempts get
	// ErrInvalidState.
	Redeem(ctx context.Context, code string, now time.Time) (*OwnerInvite, error)
}
