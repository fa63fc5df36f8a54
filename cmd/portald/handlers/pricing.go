package handlers

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
	"github.com/psmphuket/portal/pkg/session"
)

func FindPriceRequestHandler(dbpricing kdb.PricingInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		q := kdb.PricingFindQuery{
			Status:     kdb.PriceRequestStatus(c.QueryParam("status")),
			PropertyID: c.QueryParam("property"),
			Page:       queryInt(c, "page"),
			PerPage:    queryInt(c, "perPage"),
		}
		if q.Status != "" && !q.Status.Valid() {
			return apierr.BadRequest("unknown status filter", nil)
		}

		requests, total, err := dbpricing.Find(ctx, q)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, listPage(requests, total))
	}
}

// PriceRequestRegisterHandler records a price change request. Changes whose
// magnitude stays within autoApplyThreshold percent skip review and are
// applied immediately.
func PriceRequestRegisterHandler(
	dbpricing kdb.PricingInterface,
	dbprop kdb.PropertyInterface,
	autoApplyThreshold float64,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			PropertyID     string `json:"propertyId"`
			RequestedPrice int64  `json:"requestedPrice"`
			Reason         string `json:"reason"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if body.PropertyID == "" {
			return apierr.BadRequest("propertyId is required", nil)
		}
		if body.RequestedPrice <= 0 {
			return apierr.BadRequest("requestedPrice must be positive", nil)
		}

		prop, err := dbprop.Get(ctx, body.PropertyID)
		if err != nil {
			return fromDBError(err)
		}
		if prop.Price <= 0 {
			return apierr.Conflict("property has no current price to change from")
		}

		request := &kdb.PriceChangeRequest{
			PropertyID:       prop.ID,
			CurrentPrice:     prop.Price,
			RequestedPrice:   body.RequestedPrice,
			PercentageChange: kdb.PercentageChange(prop.Price, body.RequestedPrice),
			Reason:           body.Reason,
		}
		if sess := session.FromContext(c); sess != nil {
			request.RequestedBy = sess.UserID
		}

		autoApply := math.Abs(request.PercentageChange) <= autoApplyThreshold
		if err := dbpricing.Register(ctx, request, autoApply); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, request)
	}
}

func PriceRequestApproveHandler(dbpricing kdb.PricingInterface, idParam string) echo.HandlerFunc {
	return reviewHandler(idParam, func(c echo.Context, id, reviewer, note string) (*kdb.PriceChangeRequest, error) {
		return dbpricing.Approve(c.Request().Context(), id, reviewer, note)
	})
}

func PriceRequestRejectHandler(dbpricing kdb.PricingInterface, idParam string) echo.HandlerFunc {
	return reviewHandler(idParam, func(c echo.Context, id, reviewer, note string) (*kdb.PriceChangeRequest, error) {
		return dbpricing.Reject(c.Request().Context(), id, reviewer, note)
	})
}

func reviewHandler(
	idParam string,
	review func(c echo.Context, id, reviewer, note string) (*kdb.PriceChangeRequest, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body struct {
			Note string `json:"note"`
		}
		// the note is optional; an empty body is fine
		if c.Request().ContentLength > 0 {
			if err := decodeJSON(c, &body); err != nil {
				return err
			}
		}

		reviewer := ""
		if sess := session.FromContext(c); sess != nil {
			reviewer = sess.UserID
		}

		request, err := review(c, c.Param(idParam), reviewer, body.Note)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, request)
	}
}

func PriceRequestCancelHandler(dbpricing kdb.PricingInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		request, err := dbpricing.Cancel(ctx, c.Param(idParam))
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, request)
	}
}
