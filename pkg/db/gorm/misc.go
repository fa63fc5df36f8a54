package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kdb "github.com/psmphuket/portal/pkg/db"
)

// hero images, company profile and internal links are configuration-like
// records with little behavior; their repositories live together here.

type heroPG struct {
	conn *gorm.DB
}

var _ kdb.HeroInterface = &heroPG{}

func (h *heroPG) Find(ctx context.Context, q kdb.HeroFindQuery) ([]kdb.HeroImage, error) {
	tx := h.conn.WithContext(ctx).Model(&kdb.HeroImage{})

	if q.Page != "" {
		tx = tx.Where("page = ?", q.Page)
	}
	if q.DeviceClass != "" {
		tx = tx.Where("device_class = ?", q.DeviceClass)
	}
	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}

	var images []kdb.HeroImage
	err := tx.Order("page, sort_order, created_at").Find(&images).Error
	if err != nil {
		return nil, translate(err)
	}
	return images, nil
}

func (h *heroPG) Register(ctx context.Context, img *kdb.HeroImage) error {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	if img.DeviceClass == "" {
		img.DeviceClass = kdb.Desktop
	}
	return translate(h.conn.WithContext(ctx).Create(img).Error)
}

func (h *heroPG) Update(ctx context.Context, img *kdb.HeroImage) error {
	result := h.conn.WithContext(ctx).
		Model(&kdb.HeroImage{}).
		Where("id = ?", img.ID).
		Select("Page", "DeviceClass", "URL", "Alt", "Active", "SortOrder").
		Updates(img)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

func (h *heroPG) Delete(ctx context.Context, id string) error {
	result := h.conn.WithContext(ctx).Delete(&kdb.HeroImage{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

type companyPG struct {
	conn *gorm.DB
}

var _ kdb.CompanyInterface = &companyPG{}

func (c *companyPG) Get(ctx context.Context) (*kdb.CompanyProfile, error) {
	var profile kdb.CompanyProfile
	err := c.conn.WithContext(ctx).Order("created_at").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// singleton row is created lazily
		profile = kdb.CompanyProfile{ID: uuid.NewString()}
		if err := c.conn.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, translate(err)
		}
		return &profile, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (c *companyPG) Update(ctx context.Context, profile *kdb.CompanyProfile) (*kdb.CompanyProfile, error) {
	current, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	profile.ID = current.ID
	err = c.conn.WithContext(ctx).
		Model(&kdb.CompanyProfile{}).
		Where("id = ?", current.ID).
		Select(
			"Name", "Tagline", "About", "Phone", "Email",
			"WhatsApp", "Address", "SocialLinks",
		).
		Updates(profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return c.Get(ctx)
}

type linkPG struct {
	conn *gorm.DB
}

var _ kdb.LinkInterface = &linkPG{}

func (l *linkPG) Find(ctx context.Context, q kdb.LinkFindQuery) ([]kdb.InternalLink, error) {
	tx := l.conn.WithContext(ctx).Model(&kdb.InternalLink{})
	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}
	var links []kdb.InternalLink
	if err := tx.Order("keyword").Find(&links).Error; err != nil {
		return nil, translate(err)
	}
	return links, nil
}

func (l *linkPG) Register(ctx context.Context, link *kdb.InternalLink) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	link.Active = true
	return translate(l.conn.WithContext(ctx).Create(link).Error)
}

func (l *linkPG) Update(ctx context.Context, link *kdb.InternalLink) error {
	result := l.conn.WithContext(ctx).
		Model(&kdb.InternalLink{}).
		Where("id = ?", link.ID).
		Select("Keyword", "TargetURL", "Description", "Active").
		Updates(link)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

func (l *linkPG) Delete(ctx context.Context, id string) error {
	result := l.conn.WithContext(ctx).Delete(&kdb.InternalLink{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}
