package db

import (
	"context"
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	ID              string                      `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string                      `json:"title" gorm:"not null"`
	Slug            string                      `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt         string                      `json:"excerpt"`
	Content         string                      `json:"content"` // sanitized HTML
	CoverImage      string                      `json:"coverImage"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	MetaTitle       string                      `json:"metaTitle"`
	MetaDescription string                      `json:"metaDescription"`
	Published       bool                        `json:"published"`
	PublishedAt     *time.Time                  `json:"publishedAt"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

// BlogFindQuery filters Find. Zero values mean "no filter".
type BlogFindQuery struct {
	Published *bool
	Tag       string
	Search    string // matched against title and excerpt
	Page      int    // 1-origin. 0 means first page.
	PerPage   int    // 0 means default (20)
}

type BlogInterface interface {
	Find(ctx context.Context, q BlogFindQuery) ([]BlogPost, int64, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	Get(ctx context.Context, id string) (*BlogPost, error)

	// Register stores a new post. The slug is derived from the title when
	// empty; on collision a numbered suffix is appended. ErrConflict is
	// returned only when an explicit slug collides.
	Register(ctx context.Context, post *BlogPost) error

	Update(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id string) error
}
