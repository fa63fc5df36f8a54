package db

import (
	"context"
	"time"

	"gorm.io/datatypes"
)

// CompanyProfile is a singleton row; Get creates the empty profile on first
// access so PUT always has something to update.
type CompanyProfile struct {
	ID          string                                `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string                                `json:"name"`
	Tagline     string                                `json:"tagline"`
	About       string                                `json:"about"`
	Phone       string                                `json:"phone"`
	Email       string                                `json:"email"`
	WhatsApp    string                                `json:"whatsapp"`
	Address     string                                `json:"address"`
	SocialLinks datatypes.JSONType[map[string]string] `json:"socialLinks"`
	CreatedAt   time.Time                             `json:"createdAt"`
	UpdatedAt   time.Time                             `json:"updatedAt"`
}

type CompanyInterface interface {
	Get(ctx context.Context) (*CompanyProfile, error)
	Update(ctx context.Context, profile *CompanyProfile) (*CompanyProfile, error)
}
