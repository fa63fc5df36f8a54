package db

import (
	"context"
	"time"
)

type DeviceClass string

const (
	Desktop DeviceClass = "DESKTOP"
	Mobile  DeviceClass = "MOBILE"
	Tablet  DeviceClass = "TABLET"
)

func (d DeviceClass) Valid() bool {
	return d == Desktop || d == Mobile || d == Tablet
}

// HeroImage is a page-level banner variant per device class.
type HeroImage struct {
	ID          string      `json:"id" gorm:"type:uuid;primaryKey"`
	Page        string      `json:"page" gorm:"index;not null"` // home, buy, rent, ...
	DeviceClass DeviceClass `json:"deviceClass" gorm:"index;default:DESKTOP"`
	URL         string      `json:"url" gorm:"not null"`
	Alt         string      `json:"alt"`
	Active      bool        `json:"active" gorm:"default:true"`
	SortOrder   int         `json:"sortOrder"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type HeroFindQuery struct {
	Page        string
	DeviceClass DeviceClass
	Active      *bool
}

type HeroInterface interface {
	Find(ctx context.Context, q HeroFindQuery) ([]HeroImage, error)
	Register(ctx context.Context, img *HeroImage) error
	Update(ctx context.Context, img *HeroImage) error
	Delete(ctx context.Context, id string) error
}
