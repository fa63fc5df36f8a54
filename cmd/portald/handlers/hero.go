package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
)

func FindHeroHandler(dbhero kdb.HeroInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		q := kdb.HeroFindQuery{
			Page:        c.QueryParam("page"),
			DeviceClass: kdb.DeviceClass(c.QueryParam("device")),
			Active:      queryBool(c, "active"),
		}
		if q.DeviceClass != "" && !q.DeviceClass.Valid() {
			return apierr.BadRequest("device must be DESKTOP, MOBILE or TABLET", nil)
		}

		images, err := dbhero.Find(ctx, q)
		if err != nil {
			return fromDBError(err)
		}
		if images == nil {
			images = []kdb.HeroImage{}
		}
		return c.JSON(http.StatusOK, images)
	}
}

func HeroRegisterHandler(dbhero kdb.HeroInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		img := new(kdb.HeroImage)
		if err := decodeJSON(c, img); err != nil {
			return err
		}
		if err := validateHero(img); err != nil {
			return err
		}

		if err := dbhero.Register(ctx, img); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, img)
	}
}

func HeroUpdateHandler(dbhero kdb.HeroInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		img := new(kdb.HeroImage)
		if err := decodeJSON(c, img); err != nil {
			return err
		}
		img.ID = c.Param(idParam)
		if err := validateHero(img); err != nil {
			return err
		}

		if err := dbhero.Update(ctx, img); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, img)
	}
}

func validateHero(img *kdb.HeroImage) error {
	if img.Page == "" {
		return apierr.BadRequest("page is required", nil)
	}
	if img.URL == "" {
		return apierr.BadRequest("url is required", nil)
	}
	if img.DeviceClass != "" && !img.DeviceClass.Valid() {
		return apierr.BadRequest("deviceClass must be DESKTOP, MOBILE or TABLET", nil)
	}
	return nil
}

func HeroDeleteHandler(dbhero kdb.HeroInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbhero.Delete(ctx, c.Param(idParam)); err != nil {
			return fromDBError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
