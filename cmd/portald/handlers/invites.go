package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
	"github.com/psmphuket/portal/pkg/session"
)

func FindInviteHandler(dbinvite kdb.InviteInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		q := kdb.InviteFindQuery{
			Active:  queryBool(c, "active"),
			Page:    queryInt(c, "page"),
			PerPage: queryInt(c, "perPage"),
		}
		invites, total, err := dbinvite.Find(ctx, q)
		if err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusOK, listPage(invites, total))
	}
}

func InviteRegisterHandler(dbinvite kdb.InviteInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			PropertyIDs []string  `json:"propertyIds"`
			MaxUses     int       `json:"maxUses"`
			ExpiresAt   time.Time `json:"expiresAt"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if body.ExpiresAt.IsZero() || !body.ExpiresAt.After(time.Now()) {
			return apierr.BadRequest("expiresAt must be a future timestamp", nil)
		}
		if body.MaxUses < 0 {
			return apierr.BadRequest("maxUses can not be negative", nil)
		}

		invite := &kdb.OwnerInvite{
			PropertyIDs: body.PropertyIDs,
			MaxUses:     body.MaxUses,
			ExpiresAt:   body.ExpiresAt,
		}
		if sess := session.FromContext(c); sess != nil {
			invite.CreatedBy = sess.UserID
		}

		if err := dbinvite.Register(ctx, invite); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, invite)
	}
}

func InviteDeactivateHandler(dbinvite kdb.InviteInterface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbinvite.Deactivate(ctx, c.Param(idParam)); err != nil {
			return fromDBError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// InviteRedeemHandler is open: the code itself is the credential.
func InviteRedeemHandler(dbinvite kdb.InviteInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			Code string `json:"code"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if body.Code == "" {
			return apierr.BadRequest("code is required", nil)
		}

		invite, err := dbinvite.Redeem(ctx, body.Code, time.Now())
		if err != nil {
			return fromDBError(err)
		}
		// the redeeming owner only needs to know what the code unlocks
		return c.JSON(http.StatusOK, map[string]any{
			"propertyIds": invite.PropertyIDs,
			"expiresAt":   invite.ExpiresAt,
		})
	}
}
