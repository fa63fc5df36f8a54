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

	"github.com/psmphuket/portal/cmd/portald/handlers"
)

func TestInviteRegisterHandler(t *testing.T) {
	t.Run("mints an invite for the session user", func(t *testing.T) {
		mock := dbmock.NewInviteInterface()
		mock.Impl.Register = func(ctx context.Context, invite *kdb.OwnerInvite) error {
			invite.ID = "inv-1"
			invite.Code = "BCDF-GHJK"
			if invite.MaxUses == 0 {
				invite.MaxUses = 1
			}
			invite.Active = true
			return nil
		}

		expiry := time.Now().Add(14 * 24 * time.Hour).UTC().Format(time.RFC3339)
		h, login := asStaff(t, kdb.RoleAgent, handlers.InviteRegisterHandler(mock))
		e := echo.New()
		c, resp := httptestutil.Post(e, "/api/invites",
			strings.NewReader(`{"propertyIds": ["prop-1"], "expiresAt": "`+expiry+`"}`),
			httptestutil.JSON(), login,
		)
		require.NoError(t, h(c))

		assert.Equal(t, http.StatusCreated, resp.Result().StatusCode)
		registered := mock.Calls.Register[0]
		assert.Equal(t, "user-1", registered.CreatedBy)
		assert.Equal(t, []string{"prop-1"}, []string(registered.PropertyIDs))

		var body kdb.OwnerInvite
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "BCDF-GHJK", body.Code)
		assert.Equal(t, 1, body.MaxUses)
	})

	t.Run("past expiry is 400", func(t *testing.T) {
		mock := dbmock.NewInviteInterface()

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/invites",
			strings.NewReader(`{"expiresAt": "2020-01-01T00:00:00Z"}`), httptestutil.JSON(),
		)
		err := handlers.InviteRegisterHandler(mock)(c)
		assert.Equal(t, http.StatusBadRequest, httpError(t, err).Code)
		assert.Equal(t, 0, mock.Calls.Register.Times())
	})
}

func TestInviteRedeemHandler(t *testing.T) {
	t.Run("returns what the code unlocks", func(t *testing.T) {
		mock := dbmock.NewInviteInterface()
		mock.Impl.Redeem = func(ctx context.Context, code string, now time.Time) (*kdb.OwnerInvite, error) {
			return &kdb.OwnerInvite{
				ID:          "inv-1",
				Code:        code,
				PropertyIDs: []string{"prop-1", "prop-2"},
				ExpiresAt:   time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
				UsedCount:   1,
				MaxUses:     1,
				Active:      true,
			}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Post(e, "/api/invites/redeem",
			strings.NewReader(`{"code": "BCDF-GHJK"}`), httptestutil.JSON(),
		)
		require.NoError(t, handlers.InviteRedeemHandler(mock)(c))

		assert.Equal(t, "BCDF-GHJK", mock.Calls.Redeem[0].Code)

		var body struct {
			PropertyIDs []string `json:"propertyIds"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, []string{"prop-1", "prop-2"}, body.PropertyIDs)
	})

	t.Run("unknown code is 404", func(t *testing.T) {
		mock := dbmock.NewInviteInterface()
		mock.Impl.Redeem = func(ctx context.Context, code string, now time.Time) (*kdb.OwnerInvite, error) {
			return nil, kdb.ErrMissing
		}

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/invites/redeem",
			strings.NewReader(`{"code": "XXXX-XXXX"}`), httptestutil.JSON(),
		)
		err := handlers.InviteRedeemHandler(mock)(c)
		assert.Equal(t, http.StatusNotFound, httpError(t, err).Code)
	})

	t.Run("exhausted or expired code is 409", func(t *testing.T) {
		mock := dbmock.NewInviteInterface()
		mock.Impl.Redeem = func(ctx context.Context, code string, now time.Time) (*kdb.OwnerInvite, error) {
			return nil, kdb.ErrInvalidState
		}

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/invites/redeem",
			strings.NewReader(`{"code": "BCDF-GHJK"}`), httptestutil.JSON(),
		)
		err := handlers.InviteRedeemHandler(mock)(c)
		assert.Equal(t, http.StatusConflict, httpError(t, err).Code)
	})

	t.Run("missing code is 400", func(t *testing.T) {
		mock := dbmock.NewInviteInterface()

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/invites/redeem",
			strings.NewReader(`{}`), httptestutil.JSON(),
		)
		err := handlers.InviteRedeemHandler(mock)(c)
		assert.Equal(t, http.StatusBadRequest, httpError(t, err).Code)
		assert.Equal(t, 0, mock.Calls.Redeem.Times())
	})
}

func TestInviteDeactivateHandler(t *testing.T) {
	mock := dbmock.NewInviteInterface()
	mock.Impl.Deactivate = func(ctx context.Context, id string) error { return nil }

	e := echo.New()
	c, resp := httptestutil.Delete(e, "/api/invites/inv-1")
	c.SetParamNames("id")
	c.SetParamValues("inv-1")

	require.NoError(t, handlers.InviteDeactivateHandler(mock, "id")(c))
	assert.Equal(t, http.StatusNoContent, resp.Result().StatusCode)
	assert.Equal(t, []string{"inv-1"}, []string(mock.Calls.Deactivate))
}
