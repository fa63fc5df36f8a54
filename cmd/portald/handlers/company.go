package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	kdb "github.com/psmphuket/portal/pkg/db"
)

func GetCompanyHandler(dbcompany kdb.CompanyInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		profile, err := dbcompany.Get(ctx)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, profile)
	}
}

func CompanyUpdateHandler(dbcompany kdb.CompanyInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		profile := new(kdb.CompanyProfile)
		if err := decodeJSON(c, profile); err != nil {
			return err
		}

		updated, err := dbcompany.Update(ctx, profile)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}
