package gorm_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	kdb "github.com/psmphuket/portal/pkg/db"
)

func TestInviteCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[23456789BCDFGHJKMNPQRSTVWXYZ]{4}-[23456789BCDFGHJKMNPQRSTVWXYZ]{4}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := kdb.NewInviteCode()
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "code %q minted twice", code)
		seen[code] = true
	}
}

func TestInviteRedemption(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	invites := database.Invites()
	now := time.Now()

	t.Run("valid invite decrements remaining uses", func(t *testing.T) {
		invite := &kdb.OwnerInvite{
			PropertyIDs: datatypes.JSONSlice[string]{"prop-1", "prop-2"},
			MaxUses:     2,
			ExpiresAt:   now.Add(72 * time.Hour),
		}
		require.NoError(t, invites.Register(ctx, invite))
		require.NotEmpty(t, invite.Code)

		got, err := invites.Redeem(ctx, invite.Code, now)
		require.NoError(t, err)
		assert.Equal(t, 1, got.UsedCount)

		got, err = invites.Redeem(ctx, invite.Code, now)
		require.NoError(t, err)
		assert.Equal(t, 2, got.UsedCount)

		// exhausted
		_, err = invites.Redeem(ctx, invite.Code, now)
		assert.ErrorIs(t, err, kdb.ErrInvalidState)
	})

	t.Run("expired invite is refused", func(t *testing.T) {
		invite := &kdb.OwnerInvite{MaxUses: 5, ExpiresAt: now.Add(-time.Hour)}
		require.NoError(t, invites.Register(ctx, invite))

		_, err := invites.Redeem(ctx, invite.Code, now)
		assert.ErrorIs(t, err, kdb.ErrInvalidState)

		got, err := invites.Get(ctx, invite.ID)
		require.NoError(t, err)
		assert.Zero(t, got.UsedCount)
	})

	t.Run("deactivated invite is refused", func(t *testing.T) {
		invite := &kdb.OwnerInvite{MaxUses: 5, ExpiresAt: now.Add(time.Hour)}
		require.NoError(t, invites.Register(ctx, invite))
		require.NoError(t, invites.Deactivate(ctx, invite.ID))

		_, err := invites.Redeem(ctx, invite.Code, now)
		assert.ErrorIs(t, err, kdb.ErrInvalidState)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := invites.Redeem(ctx, "ZZZZ-ZZZZ", now)
		assert.ErrorIs(t, err, kdb.ErrMissing)
	})
}

func TestInviteRedeemable(t *testing.T) {
	now := time.Now()
	base := kdb.OwnerInvite{Active: true, MaxUses: 1, ExpiresAt: now.Add(time.Hour)}

	assert.True(t, base.Redeemable(now))

	expired := base
	expired.ExpiresAt = now.Add(-time.Second)
	assert.False(t, expired.Redeemable(now))

	used := base
	used.UsedCount = 1
	assert.False(t, used.Redeemable(now))

	inactive := base
	inactive.Active = false
	assert.False(t, inactive.Redeemable(now))
}
