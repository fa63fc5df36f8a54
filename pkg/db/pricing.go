package db

import (
	"context"
	"math"
	"time"
)

type PriceRequestStatus string

const (
	PriceRequestPending     PriceRequestStatus = "PENDING"
	PriceRequestApproved    PriceRequestStatus = "APPROVED"
	PriceRequestRejected    PriceRequestStatus = "REJECTED"
	PriceRequestAutoApplied PriceRequestStatus = "AUTO_APPLIED"
	PriceRequestCancelled   PriceRequestStatus = "CANCELLED"
)

func (s PriceRequestStatus) Valid() bool {
	switch s {
	case PriceRequestPending, PriceRequestApproved, PriceRequestRejected,
		PriceRequestAutoApplied, PriceRequestCancelled:
		return true
	}
	return false
}

type PriceChangeRequest struct {
	ID               string             `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID       string             `json:"propertyId" gorm:"type:uuid;index;not null"`
	Property         *Property          `json:"property,omitempty"`
	CurrentPrice     int64              `json:"currentPrice"`
	RequestedPrice   int64              `json:"requestedPrice"`
	PercentageChange float64            `json:"percentageChange"`
	Reason           string             `json:"reason"`
	Status           PriceRequestStatus `json:"status" gorm:"index;default:PENDING"`
	RequestedBy      string             `json:"requestedBy" gorm:"type:uuid"`
	ReviewedBy       *string            `json:"reviewedBy" gorm:"type:uuid"`
	ReviewedAt       *time.Time         `json:"reviewedAt"`
	ReviewNote       string             `json:"reviewNote"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// PercentageChange computes the relative price delta in percent, rounded to
// two decimals. current must be positive.
func PercentageChange(current, requested int64) float64 {
	delta := float64(requested-current) / float64(current) * 100
	return math.Round(delta*100) / 100
}

type PricingFindQuery struct {
	Status     PriceRequestStatus
	PropertyID string
	Page       int
	PerPage    int
}

type PricingInterface interface {
	Find(ctx context.Context, q PricingFindQuery) ([]PriceChangeRequest, int64, error)
	Get(ctx context.Context, id string) (*PriceChangeRequest, error)

	// Register stores a new request in PENDING. The caller decides
	// auto-apply: when autoApply is true the request is stored as
	// AUTO_APPLIED and the property price is updated in the same
	// transaction.
	Register(ctx context.Context, req *PriceChangeRequest, autoApply bool) error

	// Approve flips PENDING -> APPROVED and applies RequestedPrice to the
	// property, both in one transaction. The status flip is a guarded
	// UPDATE, so concurrent approvals apply the price exactly once; the
	// loser gets ErrInvalidState.
	Approve(ctx context.Context, id string, reviewerID string, note string) (*PriceChangeRequest, error)

	// Reject flips PENDING -> REJECTED without touching the property.
	Reject(ctx context.Context, id string, reviewerID string, note string) (*PriceChangeRequest, error)

	// Cancel flips PENDING -> CANCELLED. Allowed for the requester.
	Cancel(ctx context.Context, id string) (*PriceChangeRequest, error)
}
