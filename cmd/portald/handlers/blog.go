package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
	"github.com/psmphuket/portal/pkg/session"
)

func FindBlogHandler(dbblog kdb.BlogInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		q := kdb.BlogFindQuery{
			Published: queryBool(c, "published"),
			Tag:       c.QueryParam("tag"),
			Search:    c.QueryParam("q"),
			Page:      queryInt(c, "page"),
			PerPage:   queryInt(c, "perPage"),
		}
		// anonymous readers only see published posts
		if session.FromContext(c) == nil {
			published := true
			q.Published = &published
		}

		posts, total, err := dbblog.Find(ctx, q)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, listPage(posts, total))
	}
}

func GetBlogHandler(dbblog kdb.BlogInterface, slugParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		post, err := dbblog.GetBySlug(ctx, c.Param(slugParam))
		if err != nil {
			return fromDBError(err)
		}
		if !post.Published && session.FromContext(c) == nil {
			return apierr.NotFound()
		}
		return c.JSON(http.StatusOK, post)
	}
}

func BlogRegisterHandler(dbblog kdb.BlogInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		post := new(kdb.BlogPost)
		if err := decodeJSON(c, post); err != nil {
			return err
		}
		if post.Title == "" {
			return apierr.BadRequest("title is required", nil)
		}
		if post.Published && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}

		if err := dbblog.Register(ctx, post); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, post)
	}
}

func BlogUpdateHandler(dbblog kdb.BlogInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		post := new(kdb.BlogPost)
		if err := decodeJSON(c, post); err != nil {
			return err
		}
		post.ID = c.Param(idParam)
		if post.Title == "" {
			return apierr.BadRequest("title is required", nil)
		}
		if post.Published && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}

		if err := dbblog.Update(ctx, post); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, post)
	}
}

func BlogDeleteHandler(dbblog kdb.BlogInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbblog.Delete(ctx, c.Param(idParam)); err != nil {
			return fromDBError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
