package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type pricingPG struct {
	conn *gorm.DB
}

var _ kdb.PricingInterface = &pricingPG{}

func (p *pricingPG) Find(ctx context.Context, q kdb.PricingFindQuery) ([]kdb.PriceChangeRequest, int64, error) {
	tx := p.conn.WithContext(ctx).Model(&kdb.PriceChangeRequest{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.PropertyID != "" {
		tx = tx.Where("property_id = ?", q.PropertyID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var reqs []kdb.PriceChangeRequest
	err := paginate(tx, q.Page, q.PerPage).
		Preload("Property").
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return reqs, total, nil
}

func (p *pricingPG) Get(ctx context.Context, id string) (*kdb.PriceChangeRequest, error) {
	var req kdb.PriceChangeRequest
	err := p.conn.WithContext(ctx).
		Preload("Property").
		Where("id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, translate(err)
	}
	return &req, nil
}

func (p *pricingPG) Register(ctx context.Context, req *kdb.PriceChangeRequest, autoApply bool) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.PercentageChange = kdb.PercentageChange(req.CurrentPrice, req.RequestedPrice)

	return p.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prop kdb.Property
		if err := tx.Where("id = ?", req.PropertyID).First(&prop).Error; err != nil {
			return translate(err)
		}

		if autoApply {
			req.Status = kdb.PriceRequestAutoApplied
			now := time.Now()
			req.ReviewedAt = &now
			if err := tx.Model(&kdb.Property{}).
				Where("id = ?", req.PropertyID).
				Update("price", req.RequestedPrice).Error; err != nil {
				return translate(err)
			}
		} else {
			req.Status = kdb.PriceRequestPending
		}

		return translate(tx.Omit("Property").Create(req).Error)
	})
}

func (p *pricingPG) Approve(ctx context.Context, id string, reviewerID string, note string) (*kdb.PriceChangeRequest, error) {
	err := p.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		// guarded flip: only one concurrent reviewer wins, so the price
		// is applied exactly once
		result := tx.Model(&kdb.PriceChangeRequest{}).
			Where("id = ? AND status = ?", id, kdb.PriceRequestPending).
			Updates(map[string]any{
				"status":      kdb.PriceRequestApproved,
				"reviewed_by": reviewerID,
				"reviewed_at": &now,
				"review_note": note,
			})
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return p.missingOrInvalid(tx, id)
		}

		var req kdb.PriceChangeRequest
		if err := tx.Where("id = ?", id).First(&req).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Model(&kdb.Property{}).
			Where("id = ?", req.PropertyID).
			Update("price", req.RequestedPrice).Error)
	})
	if err != nil {
		return nil, err
	}
	return p.Get(ctx, id)
}

func (p *pricingPG) Reject(ctx context.Context, id string, reviewerID string, note string) (*kdb.PriceChangeRequest, error) {
	return p.flip(ctx, id, kdb.PriceRequestRejected, &reviewerID, note)
}

func (p *pricingPG) Cancel(ctx context.Context, id string) (*kdb.PriceChangeRequest, error) {
	return p.flip(ctx, id, kdb.PriceRequestCancelled, nil, "")
}

// flip is the guarded PENDING -> terminal transition shared by Reject and
// Cancel. Approve is separate because it also writes the property.
func (p *pricingPG) flip(ctx context.Context, id string, to kdb.PriceRequestStatus, reviewerID *string, note string) (*kdb.PriceChangeRequest, error) {
	now := time.Now()
	updates := map[string]any{
		"status":      to,
		"reviewed_at": &now,
	}
	if reviewerID != nil {
		updates["reviewed_by"] = *reviewerID
	}
	if note != "" {
		updates["review_note"] = note
	}

	result := p.conn.WithContext(ctx).
		Model(&kdb.PriceChangeRequest{}).
		Where("id = ? AND status = ?", id, kdb.PriceRequestPending).
		Updates(updates)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, p.missingOrInvalid(p.conn.WithContext(ctx), id)
	}
	return p.Get(ctx, id)
}

// missingOrInvalid disambiguates a zero-row guarded update.
func (p *pricingPG) missingOrInvalid(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&kdb.PriceChangeRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count == 0 {
		return kdb.ErrMissing
	}
	return kdb.ErrInvalidState
}
