package db

import (
	"context"
	"time"

	"gorm.io/datatypes"
)

type PropertyStatus string

const (
	PropertyActive PropertyStatus = "ACTIVE"
	PropertySold   PropertyStatus = "SOLD"
	PropertyRented PropertyStatus = "RENTED"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyActive, PropertySold, PropertyRented:
		return true
	}
	return false
}

type PropertyType string

const (
	ForSale PropertyType = "FOR_SALE"
	ForRent PropertyType = "FOR_RENT"
)

func (t PropertyType) Valid() bool {
	return t == ForSale || t == ForRent
}

type Property struct {
	ID            string                      `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string                      `json:"title" gorm:"not null"`
	Slug          string                      `json:"slug" gorm:"uniqueIndex;not null"`
	ListingNumber string                      `json:"listingNumber" gorm:"uniqueIndex;not null"`
	Location      string                      `json:"location" gorm:"index"`
	Description   string                      `json:"description"`
	Price         int64                       `json:"price"` // THB
	Bedrooms      int                         `json:"bedrooms"`
	Bathrooms     int                         `json:"bathrooms"`
	AreaSqm       float64                     `json:"areaSqm"`
	Images        datatypes.JSONSlice[string] `json:"images"`
	Status        PropertyStatus              `json:"status" gorm:"index;default:ACTIVE"`
	Type          PropertyType                `json:"type" gorm:"index"`
	Featured      bool                        `json:"featured"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

type PropertyFindQuery struct {
	Status   PropertyStatus
	Type     PropertyType
	Location string
	MinPrice int64
	MaxPrice int64
	Bedrooms int
	Featured *bool
	Search   string
	Page     int
	PerPage  int
}

type PropertyInterface interface {
	Find(ctx context.Context, q PropertyFindQuery) ([]Property, int64, error)
	GetBySlug(ctx context.Context, slug string) (*Property, error)
	Get(ctx context.Context, id string) (*Property, error)
	Register(ctx context.Context, prop *Property) error
	Update(ctx context.Context, prop *Property) error

	// SetStatus swaps the status enum. No transition guards: status
	// gates UI affordances only.
	SetStatus(ctx context.Context, id string, status PropertyStatus) (*Property, error)

	// Delete removes the property. Tasks referencing it keep existing
	// with their PropertyID nulled.
	Delete(ctx context.Context, id string) error
}
