package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
)

func FindLinkHandler(dblink kdb.LinkInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		links, err := dblink.Find(ctx, kdb.LinkFindQuery{Active: queryBool(c, "active")})
		if err != nil {
			return fromDBError(err)
		}
		if links == nil {
			links = []kdb.InternalLink{}
		}
		return c.JSON(http.StatusOK, links)
	}
}

func LinkRegisterHandler(dblink kdb.LinkInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		link := new(kdb.InternalLink)
		if err := decodeJSON(c, link); err != nil {
			return err
		}
		if link.Keyword == "" || link.TargetURL == "" {
			return apierr.BadRequest("keyword and targetUrl are required", nil)
		}

		if err := dblink.Register(ctx, link); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, link)
	}
}

func LinkUpdateHandler(dblink kdb.LinkInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		link := new(kdb.InternalLink)
		if err := decodeJSON(c, link); err != nil {
			return err
		}
		link.ID = c.Param(idParam)
		if link.Keyword == "" || link.TargetURL == "" {
			return apierr.BadRequest("keyword and targetUrl are required", nil)
		}

		if err := dblink.Update(ctx, link); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, link)
	}
}

func LinkDeleteHandler(dblink kdb.LinkInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dblink.Delete(ctx, c.Param(idParam)); err != nil {
			return fromDBError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
