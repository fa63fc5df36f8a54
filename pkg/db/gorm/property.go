package gorm

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type propertyPG struct {
	conn *gorm.DB
}

var _ kdb.PropertyInterface = &propertyPG{}

func (p *propertyPG) Find(ctx context.Context, q kdb.PropertyFindQuery) ([]kdb.Property, int64, error) {
	tx := p.conn.WithContext(ctx).Model(&kdb.Property{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	if q.Location != "" {
		tx = tx.Where("location LIKE ?", "%"+q.Location+"%")
	}
	if q.MinPrice > 0 {
		tx = tx.Where("price >= ?", q.MinPrice)
	}
	if q.MaxPrice > 0 {
		tx = tx.Where("price <= ?", q.MaxPrice)
	}
	if q.Bedrooms > 0 {
		tx = tx.Where("bedrooms >= ?", q.Bedrooms)
	}
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}
	if q.Search != "" {
		pat := "%" + q.Search + "%"
		tx = tx.Where("title LIKE ? OR description LIKE ? OR listing_number LIKE ?", pat, pat, pat)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var props []kdb.Property
	err := paginate(tx, q.Page, q.PerPage).
		Order("featured DESC, created_at DESC").
		Find(&props).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return props, total, nil
}

func (p *propertyPG) GetBySlug(ctx context.Context, s string) (*kdb.Property, error) {
	var prop kdb.Property
	err := p.conn.WithContext(ctx).Where("slug = ?", s).First(&prop).Error
	if err != nil {
		return nil, translate(err)
	}
	return &prop, nil
}

func (p *propertyPG) Get(ctx context.Context, id string) (*kdb.Property, error) {
	var prop kdb.Property
	err := p.conn.WithContext(ctx).Where("id = ?", id).First(&prop).Error
	if err != nil {
		return nil, translate(err)
	}
	return &prop, nil
}

func (p *propertyPG) Register(ctx context.Context, prop *kdb.Property) error {
	if prop.ID == "" {
		prop.ID = uuid.NewString()
	}
	if prop.Status == "" {
		prop.Status = kdb.PropertyActive
	}
	if prop.Slug == "" {
		var err error
		prop.Slug, err = uniqueSlug(p.conn.WithContext(ctx), &kdb.Property{}, prop.Title)
		if err != nil {
			return err
		}
	} else {
		prop.Slug = slug.Make(prop.Slug)
	}
	if prop.ListingNumber == "" {
		num, err := p.freshListingNumber(ctx)
		if err != nil {
			return err
		}
		prop.ListingNumber = num
	}
	return translate(p.conn.WithContext(ctx).Create(prop).Error)
}

// freshListingNumber draws random PSM-XXXXX numbers until one is unused.
func (p *propertyPG) freshListingNumber(ctx context.Context) (string, error) {
	for {
		n, err := rand.Int(rand.Reader, big.NewInt(100000))
		if err != nil {
			return "", err
		}
		candidate := fmt.Sprintf("PSM-%05d", n.Int64())
		var count int64
		err = p.conn.WithContext(ctx).
			Model(&kdb.Property{}).
			Where("listing_number = ?", candidate).
			Count(&count).Error
		if err != nil {
			return "", translate(err)
		}
		if count == 0 {
			return candidate, nil
		}
	}
}

func (p *propertyPG) Update(ctx context.Context, prop *kdb.Property) error {
	if prop.Slug != "" {
		prop.Slug = slug.Make(prop.Slug)
	}
	result := p.conn.WithContext(ctx).
		Model(&kdb.Property{}).
		Where("id = ?", prop.ID).
		Select(
			"Title", "Slug", "Location", "Description", "Price",
			"Bedrooms", "Bathrooms", "AreaSqm", "Images", "Type", "Featured",
		).
		Updates(prop)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

func (p *propertyPG) SetStatus(ctx context.Context, id string, status kdb.PropertyStatus) (*kdb.Property, error) {
	result := p.conn.WithContext(ctx).
		Model(&kdb.Property{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, kdb.ErrMissing
	}
	return p.Get(ctx, id)
}

func (p *propertyPG) Delete(ctx context.Context, id string) error {
	return p.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// keep tasks alive, drop the dangling reference
		if err := tx.Model(&kdb.Task{}).
			Where("property_id = ?", id).
			Update("property_id", nil).Error; err != nil {
			return translate(err)
		}
		result := tx.Delete(&kdb.Property{}, "id = ?", id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return kdb.ErrMissing
		}
		return nil
	})
}
