package gorm_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	kdb "github.com/psmphuket/portal/pkg/db"
)

var urlSafeSlug = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestBlogRegisterAndGet(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	blog := database.Blog()

	t.Run("create then fetch by id returns a URL-safe unique slug", func(t *testing.T) {
		post := &kdb.BlogPost{
			Title:   "Best Areas to Invest in Phuket 2025!",
			Excerpt: "Where the smart money goes.",
			Content: "<p>...</p>",
			Tags:    datatypes.JSONSlice[string]{"investment", "phuket"},
		}
		require.NoError(t, blog.Register(ctx, post))

		got, err := blog.Get(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "best-areas-to-invest-in-phuket-2025", got.Slug)
		assert.Regexp(t, urlSafeSlug, got.Slug)
		assert.False(t, got.Published)
	})

	t.Run("same title gets a numbered suffix", func(t *testing.T) {
		post := &kdb.BlogPost{Title: "Best Areas to Invest in Phuket 2025!"}
		require.NoError(t, blog.Register(ctx, post))
		assert.Equal(t, "best-areas-to-invest-in-phuket-2025-2", post.Slug)

		third := &kdb.BlogPost{Title: "Best Areas to Invest in Phuket 2025!"}
		require.NoError(t, blog.Register(ctx, third))
		assert.Equal(t, "best-areas-to-invest-in-phuket-2025-3", third.Slug)
	})

	t.Run("explicit colliding slug is refused", func(t *testing.T) {
		post := &kdb.BlogPost{
			Title: "Another Post",
			Slug:  "best-areas-to-invest-in-phuket-2025",
		}
		err := blog.Register(ctx, post)
		assert.ErrorIs(t, err, kdb.ErrConflict)
	})

	t.Run("GetBySlug resolves the public URL", func(t *testing.T) {
		got, err := blog.GetBySlug(ctx, "best-areas-to-invest-in-phuket-2025")
		require.NoError(t, err)
		assert.Equal(t, "Best Areas to Invest in Phuket 2025!", got.Title)

		_, err = blog.GetBySlug(ctx, "no-such-post")
		assert.ErrorIs(t, err, kdb.ErrMissing)
	})
}

func TestBlogFind(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	blog := database.Blog()

	published := true
	for _, p := range []*kdb.BlogPost{
		{Title: "Phuket Villas Guide", Published: true, Tags: datatypes.JSONSlice[string]{"villas"}},
		{Title: "Condo Buying Tips", Published: true, Tags: datatypes.JSONSlice[string]{"condos"}},
		{Title: "Draft Notes", Published: false},
	} {
		require.NoError(t, blog.Register(ctx, p))
	}

	t.Run("published filter", func(t *testing.T) {
		posts, total, err := blog.Find(ctx, kdb.BlogFindQuery{Published: &published})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, posts, 2)
	})

	t.Run("tag filter", func(t *testing.T) {
		posts, total, err := blog.Find(ctx, kdb.BlogFindQuery{Tag: "villas"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, posts, 1)
		assert.Equal(t, "Phuket Villas Guide", posts[0].Title)
	})

	t.Run("search matches title", func(t *testing.T) {
		_, total, err := blog.Find(ctx, kdb.BlogFindQuery{Search: "Condo"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("pagination caps the page size but reports the full total", func(t *testing.T) {
		posts, total, err := blog.Find(ctx, kdb.BlogFindQuery{Page: 1, PerPage: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, posts, 2)
	})
}

func TestBlogUpdateDelete(t *testing.T) {
	database := testDatabase(t)
	ctx := context.Background()
	blog := database.Blog()

	post := &kdb.BlogPost{Title: "Original"}
	require.NoError(t, blog.Register(ctx, post))

	post.Title = "Edited"
	post.Published = true
	require.NoError(t, blog.Update(ctx, post))

	got, err := blog.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Title)
	assert.True(t, got.Published)

	require.NoError(t, blog.Delete(ctx, post.ID))
	_, err = blog.Get(ctx, post.ID)
	assert.ErrorIs(t, err, kdb.ErrMissing)

	assert.ErrorIs(t, blog.Delete(ctx, post.ID), kdb.ErrMissing)
}
