package gorm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type blogPG struct {
	conn *gorm.DB
}

var _ kdb.BlogInterface = &blogPG{}

func (b *blogPG) Find(ctx context.Context, q kdb.BlogFindQuery) ([]kdb.BlogPost, int64, error) {
	tx := b.conn.WithContext(ctx).Model(&kdb.BlogPost{})

	if q.Published != nil {
		tx = tx.Where("published = ?", *q.Published)
	}
	if q.Tag != "" {
		// tags are a JSON array of strings; match the quoted element.
		// CAST keeps this valid for both jsonb (postgres) and text (sqlite).
		tx = tx.Where("CAST(tags AS TEXT) LIKE ?", fmt.Sprintf(`%%%q%%`, q.Tag))
	}
	if q.Search != "" {
		pat := "%" + q.Search + "%"
		tx = tx.Where("title LIKE ? OR excerpt LIKE ?", pat, pat)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var posts []kdb.BlogPost
	err := paginate(tx, q.Page, q.PerPage).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return posts, total, nil
}

func (b *blogPG) GetBySlug(ctx context.Context, s string) (*kdb.BlogPost, error) {
	var post kdb.BlogPost
	err := b.conn.WithContext(ctx).Where("slug = ?", s).First(&post).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (b *blogPG) Get(ctx context.Context, id string) (*kdb.BlogPost, error) {
	var post kdb.BlogPost
	err := b.conn.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (b *blogPG) Register(ctx context.Context, post *kdb.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	derived := post.Slug == ""
	if derived {
		var err error
		post.Slug, err = uniqueSlug(b.conn.WithContext(ctx), &kdb.BlogPost{}, post.Title)
		if err != nil {
			return err
		}
	} else {
		post.Slug = slug.Make(post.Slug)
	}
	return translate(b.conn.WithContext(ctx).Create(post).Error)
}

func (b *blogPG) Update(ctx context.Context, post *kdb.BlogPost) error {
	if post.Slug != "" {
		post.Slug = slug.Make(post.Slug)
	}
	result := b.conn.WithContext(ctx).
		Model(&kdb.BlogPost{}).
		Where("id = ?", post.ID).
		Select(
			"Title", "Slug", "Excerpt", "Content", "CoverImage", "Tags",
			"MetaTitle", "MetaDescription", "Published", "PublishedAt",
		).
		Updates(post)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

func (b *blogPG) Delete(ctx context.Context, id string) error {
	result := b.conn.WithContext(ctx).Delete(&kdb.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return kdb.ErrMissing
	}
	return nil
}

// uniqueSlug slugifies title and appends -2, -3, ... while the slug is
// taken. The unique index stays as the last line of defence against races.
func uniqueSlug(tx *gorm.DB, model any, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "untitled"
	}
	candidate := base
	for n := 2; ; n++ {
		var count int64
		if err := tx.Model(model).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", translate(err)
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
