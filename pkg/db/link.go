package db

import (
	"context"
	"time"
)

// InternalLink maps a keyword to an on-site URL. The content generator
// weaves active links into generated articles on first keyword occurrence.
type InternalLink struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Keyword     string    `json:"keyword" gorm:"index;not null"`
	TargetURL   string    `json:"targetUrl" gorm:"not null"`
	Description string    `json:"description"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type LinkFindQuery struct {
	Active *bool
}

type LinkInterface interface {
	Find(ctx context.Context, q LinkFindQuery) ([]InternalLink, error)
	Register(ctx context.Context, link *InternalLink) error
	Update(ctx context.Context, link *InternalLink) error
	Delete(ctx context.Context, id string) error
}
