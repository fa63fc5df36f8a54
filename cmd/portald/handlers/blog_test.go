package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptestutil "github.com/psmphuket/portal/internal/testutils/http"
	kdb "github.com/psmphuket/portal/pkg/db"
	dbmock "github.com/psmphuket/portal/pkg/db/mocks"
	"github.com/psmphuket/portal/pkg/session"

	"github.com/psmphuket/portal/cmd/portald/handlers"
)

// asStaff wraps a handler with the session middleware and returns a
// request option carrying a valid staff token.
func asStaff(t *testing.T, role kdb.Role, h echo.HandlerFunc) (echo.HandlerFunc, httptestutil.RequestOption) {
	t.Helper()
	issuer := session.NewIssuer("test-secret", time.Hour)
	token, err := issuer.Issue(&kdb.User{ID: "user-1", Name: "Tester", Email: "t@psm.test", Role: role}, time.Now())
	require.NoError(t, err)
	return session.Resolve(issuer)(h), httptestutil.WithHeader("Authorization", "Bearer "+token)
}

func httpError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	var echoErr *echo.HTTPError
	require.ErrorAs(t, err, &echoErr)
	return echoErr
}

func TestFindBlogHandler(t *testing.T) {
	t.Run("anonymous requests are pinned to published posts", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.Find = func(ctx context.Context, q kdb.BlogFindQuery) ([]kdb.BlogPost, int64, error) {
			return []kdb.BlogPost{{ID: "post-1", Title: "Phuket market"}}, 1, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/blog?published=false")
		err := handlers.FindBlogHandler(mock)(c)
		require.NoError(t, err)

		require.Equal(t, 1, mock.Calls.Find.Times())
		query := mock.Calls.Find[0]
		require.NotNil(t, query.Published)
		assert.True(t, *query.Published)

		assert.Equal(t, http.StatusOK, resp.Result().StatusCode)
		var page handlers.ListPage[kdb.BlogPost]
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
		assert.Equal(t, int64(1), page.Total)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "post-1", page.Items[0].ID)
	})

	t.Run("staff sessions may filter freely", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.Find = func(ctx context.Context, q kdb.BlogFindQuery) ([]kdb.BlogPost, int64, error) {
			return nil, 0, nil
		}

		h, login := asStaff(t, kdb.RoleAgent, handlers.FindBlogHandler(mock))
		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/blog?tag=investment", login)
		require.NoError(t, h(c))

		query := mock.Calls.Find[0]
		assert.Nil(t, query.Published)
		assert.Equal(t, "investment", query.Tag)
	})
}

func TestGetBlogHandler(t *testing.T) {
	post := kdb.BlogPost{ID: "post-1", Title: "Hidden draft", Slug: "hidden-draft"}

	t.Run("anonymous readers get 404 for drafts", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.GetBySlug = func(ctx context.Context, slug string) (*kdb.BlogPost, error) {
			found := post
			return &found, nil
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/blog/hidden-draft")
		c.SetParamNames("slug")
		c.SetParamValues("hidden-draft")

		err := handlers.GetBlogHandler(mock, "slug")(c)
		assert.Equal(t, http.StatusNotFound, httpError(t, err).Code)
	})

	t.Run("staff read drafts", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.GetBySlug = func(ctx context.Context, slug string) (*kdb.BlogPost, error) {
			found := post
			return &found, nil
		}

		h, login := asStaff(t, kdb.RoleAgent, handlers.GetBlogHandler(mock, "slug"))
		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/blog/hidden-draft", login)
		c.SetParamNames("slug")
		c.SetParamValues("hidden-draft")

		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, resp.Result().StatusCode)
	})

	t.Run("missing slug is 404", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.GetBySlug = func(ctx context.Context, slug string) (*kdb.BlogPost, error) {
			return nil, kdb.ErrMissing
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/blog/nope")
		c.SetParamNames("slug")
		c.SetParamValues("nope")

		err := handlers.GetBlogHandler(mock, "slug")(c)
		assert.Equal(t, http.StatusNotFound, httpError(t, err).Code)
	})
}

func TestBlogRegisterHandler(t *testing.T) {
	t.Run("registers and stamps PublishedAt for published posts", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.Register = func(ctx context.Context, post *kdb.BlogPost) error {
			post.ID = "post-new"
			post.Slug = "phuket-market-2026"
			return nil
		}

		e := echo.New()
		c, resp := httptestutil.Post(e, "/api/blog",
			strings.NewReader(`{"title": "Phuket market 2026", "content": "<p>hi</p>", "published": true}`),
			httptestutil.JSON(),
		)
		require.NoError(t, handlers.BlogRegisterHandler(mock)(c))

		assert.Equal(t, http.StatusCreated, resp.Result().StatusCode)
		require.Equal(t, 1, mock.Calls.Register.Times())
		registered := mock.Calls.Register[0]
		assert.NotNil(t, registered.PublishedAt)

		var body kdb.BlogPost
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "post-new", body.ID)
		assert.Equal(t, "phuket-market-2026", body.Slug)
	})

	t.Run("missing title is 400", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/blog",
			strings.NewReader(`{"content": "<p>hi</p>"}`), httptestutil.JSON(),
		)
		err := handlers.BlogRegisterHandler(mock)(c)
		assert.Equal(t, http.StatusBadRequest, httpError(t, err).Code)
		assert.Equal(t, 0, mock.Calls.Register.Times())
	})

	t.Run("wrong content type is 400", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/blog",
			strings.NewReader("title=x"), httptestutil.ContentType("application/x-www-form-urlencoded"),
		)
		err := handlers.BlogRegisterHandler(mock)(c)
		assert.Equal(t, http.StatusBadRequest, httpError(t, err).Code)
	})

	t.Run("explicit slug collision is 409", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.Register = func(ctx context.Context, post *kdb.BlogPost) error {
			return kdb.ErrConflict
		}

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/blog",
			strings.NewReader(`{"title": "x", "slug": "taken"}`), httptestutil.JSON(),
		)
		err := handlers.BlogRegisterHandler(mock)(c)
		assert.Equal(t, http.StatusConflict, httpError(t, err).Code)
	})
}

func TestBlogDeleteHandler(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.Delete = func(ctx context.Context, id string) error { return nil }

		e := echo.New()
		c, resp := httptestutil.Delete(e, "/api/blog/post-1")
		c.SetParamNames("id")
		c.SetParamValues("post-1")

		require.NoError(t, handlers.BlogDeleteHandler(mock, "id")(c))
		assert.Equal(t, http.StatusNoContent, resp.Result().StatusCode)
		assert.Equal(t, []string{"post-1"}, []string(mock.Calls.Delete))
	})

	t.Run("missing id is 404", func(t *testing.T) {
		mock := dbmock.NewBlogInterface()
		mock.Impl.Delete = func(ctx context.Context, id string) error { return kdb.ErrMissing }

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/blog/nope")
		c.SetParamNames("id")
		c.SetParamValues("nope")

		err := handlers.BlogDeleteHandler(mock, "id")(c)
		assert.Equal(t, http.StatusNotFound, httpError(t, err).Code)
	})
}
