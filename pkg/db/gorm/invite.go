package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type invitePG struct {
	conn *gorm.DB
}

var _ kdb.InviteInterface = &invitePG{}

func (i *invitePG) Find(ctx context.Context, q kdb.InviteFindQuery) ([]kdb.OwnerInvite, int64, error) {
	tx := i.conn.WithContext(ctx).Model(&kdb.OwnerInvite{})

	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var invites []kdb.OwnerInvite
	err := paginate(tx, q.Page, q.PerPage).
		Order("created_at DESC").
		Find(&invites).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return invites, total, nil
}

func (i *invitePG) Get(ctx context.Context, id string) (*kdb.OwnerInvite, error) {
	var invite kdb.OwnerInvite
	err := i.conn.WithContext(ctx).Where("id = ?", id).First(&invite).Error
	if err != nil {
		return nil, translate(err)
	}
	return &invite, nil
}

func (i *invitePG) Register(ctx context.Context, invite *kdb.OwnerInvite) error {
	if invite.ID == "" {
		invite.ID = uuid.NewString()
	}
	if invite.Code == "" {
		invite.Code = kdb.NewInviteCode()
	}
	if invite.MaxUses <= 0 {
		invite.MaxUses = 1
	}
	invite.Active = true
	return translate(i.conn.WithContext(ctx).Create(invite).Error)
}

func (i *invitePG) Deactivate(ctx context.Context, id string) error {
	result := i.conn.WithContext(ctx).
		Model(&kdb.OwnerInvite{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

func (i *invitePG) Redeem(ctx context.Context, code string, now time.Time) (*kdb.OwnerInvite, error) {
	var invite kdb.OwnerInvite
	err := i.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("code = ?", code).First(&invite).Error; err != nil {
			return translate(err)
		}

		// guarded increment: used_count can never pass max_uses even
		// when two redemptions race
		result := tx.Model(&kdb.OwnerInvite{}).
			Where(
				"id = ? AND active = ? AND used_count < max_uses AND expires_at > ?",
				invite.ID, true, now,
			).
			Update("used_count", gorm.Expr("used_count + 1"))
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return kdb.ErrInvalidState
		}

		return translate(tx.Where("id = ?", invite.ID).First(&invite).Error)
	})
	if err != nil {
		return nil, err
	}
	return &invite, nil
}
