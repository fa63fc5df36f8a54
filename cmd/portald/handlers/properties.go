package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
	"github.com/psmphuket/portal/pkg/session"
)

func FindPropertyHandler(dbprop kdb.PropertyInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		q := kdb.PropertyFindQuery{
			Status:   kdb.PropertyStatus(c.QueryParam("status")),
			Type:     kdb.PropertyType(c.QueryParam("type")),
			Location: c.QueryParam("location"),
			MinPrice: queryInt64(c, "minPrice"),
			MaxPrice: queryInt64(c, "maxPrice"),
			Bedrooms: queryInt(c, "bedrooms"),
			Featured: queryBool(c, "featured"),
			Search:   c.QueryParam("q"),
			Page:     queryInt(c, "page"),
			PerPage:  queryInt(c, "perPage"),
		}
		if q.Status != "" && !q.Status.Valid() {
			return apierr.BadRequest("unknown status filter", nil)
		}
		if q.Type != "" && !q.Type.Valid() {
			return apierr.BadRequest("unknown type filter", nil)
		}
		// anonymous visitors only browse the active inventory
		if session.FromContext(c) == nil {
			q.Status = kdb.PropertyActive
		}

		props, total, err := dbprop.Find(ctx, q)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, listPage(props, total))
	}
}

func GetPropertyHandler(dbprop kdb.PropertyInterface, slugParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		prop, err := dbprop.GetBySlug(ctx, c.Param(slugParam))
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, prop)
	}
}

func PropertyRegisterHandler(dbprop kdb.PropertyInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		prop := new(kdb.Property)
		if err := decodeJSON(c, prop); err != nil {
			return err
		}
		if err := validateProperty(prop); err != nil {
			return err
		}

		if err := dbprop.Register(ctx, prop); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, prop)
	}
}

func PropertyUpdateHandler(dbprop kdb.PropertyInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		prop := new(kdb.Property)
		if err := decodeJSON(c, prop); err != nil {
			return err
		}
		prop.ID = c.Param(idParam)
		if err := validateProperty(prop); err != nil {
			return err
		}

		if err := dbprop.Update(ctx, prop); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, prop)
	}
}

func validateProperty(prop *kdb.Property) error {
	if prop.Title == "" {
		return apierr.BadRequest("title is required", nil)
	}
	if !prop.Type.Valid() {
		return apierr.BadRequest("type must be FOR_SALE or FOR_RENT", nil)
	}
	if prop.Price < 0 {
		return apierr.BadRequest("price can not be negative", nil)
	}
	return nil
}

func PropertySetStatusHandler(dbprop kdb.PropertyInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			Status kdb.PropertyStatus `json:"status"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if !body.Status.Valid() {
			return apierr.BadRequest("status must be ACTIVE, SOLD or RENTED", nil)
		}

		prop, err := dbprop.SetStatus(ctx, c.Param(idParam), body.Status)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, prop)
	}
}

func PropertyDeleteHandler(dbprop kdb.PropertyInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbprop.Delete(ctx, c.Param(idParam)); err != nil {
			return fromDBError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
