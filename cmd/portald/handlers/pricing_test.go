package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptestutil "github.com/psmphuket/portal/internal/testutils/http"
	kdb "github.com/psmphuket/portal/pkg/db"
	dbmock "github.com/psmphuket/portal/pkg/db/mocks"

	"github.com/psmphuket/portal/cmd/portald/handlers"
)

func TestPriceRequestRegisterHandler(t *testing.T) {
	villa := kdb.Property{ID: "prop-1", Title: "Villa", Price: 10_000_000}

	newMocks := func() (*dbmock.PricingInterface, *dbmock.PropertyInterface) {
		pricing := dbmock.NewPricingInterface()
		pricing.Impl.Register = func(ctx context.Context, req *kdb.PriceChangeRequest, autoApply bool) error {
			req.ID = "pcr-1"
			if autoApply {
				req.Status = kdb.PriceRequestAutoApplied
			} else {
				req.Status = kdb.PriceRequestPending
			}
			return nil
		}
		props := dbmock.NewPropertyInterface()
		props.Impl.Get = func(ctx context.Context, id string) (*kdb.Property, error) {
			found := villa
			return &found, nil
		}
		return pricing, props
	}

	t.Run("small changes are applied without review", func(t *testing.T) {
		pricing, props := newMocks()

		// -3% with a 5% threshold
		h, login := asStaff(t, kdb.RoleOwner, handlers.PriceRequestRegisterHandler(pricing, props, 5))
		e := echo.New()
		c, resp := httptestutil.Post(e, "/api/price-requests",
			strings.NewReader(`{"propertyId": "prop-1", "requestedPrice": 9700000, "reason": "slow season"}`),
			httptestutil.JSON(), login,
		)
		require.NoError(t, h(c))

		registered := pricing.Calls.Register[0]
		assert.True(t, registered.AutoApply)
		assert.Equal(t, -3.0, registered.Request.PercentageChange)
		assert.Equal(t, int64(10_000_000), registered.Request.CurrentPrice)
		assert.Equal(t, "user-1", registered.Request.RequestedBy)

		assert.Equal(t, http.StatusCreated, resp.Result().StatusCode)
		var body kdb.PriceChangeRequest
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, kdb.PriceRequestAutoApplied, body.Status)
	})

	t.Run("large changes wait for review", func(t *testing.T) {
		pricing, props := newMocks()

		// -13% with a 5% threshold
		e := echo.New()
		c, resp := httptestutil.Post(e, "/api/price-requests",
			strings.NewReader(`{"propertyId": "prop-1", "requestedPrice": 8700000}`),
			httptestutil.JSON(),
		)
		require.NoError(t, handlers.PriceRequestRegisterHandler(pricing, props, 5)(c))

		registered := pricing.Calls.Register[0]
		assert.False(t, registered.AutoApply)
		assert.Equal(t, -13.0, registered.Request.PercentageChange)

		var body kdb.PriceChangeRequest
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, kdb.PriceRequestPending, body.Status)
	})

	t.Run("unknown property is 404", func(t *testing.T) {
		pricing := dbmock.NewPricingInterface()
		props := dbmock.NewPropertyInterface()
		props.Impl.Get = func(ctx context.Context, id string) (*kdb.Property, error) {
			return nil, kdb.ErrMissing
		}

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/price-requests",
			strings.NewReader(`{"propertyId": "nope", "requestedPrice": 1000}`),
			httptestutil.JSON(),
		)
		err := handlers.PriceRequestRegisterHandler(pricing, props, 5)(c)
		assert.Equal(t, http.StatusNotFound, httpError(t, err).Code)
		assert.Equal(t, 0, pricing.Calls.Register.Times())
	})

	t.Run("non-positive requested price is 400", func(t *testing.T) {
		pricing := dbmock.NewPricingInterface()
		props := dbmock.NewPropertyInterface()

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/price-requests",
			strings.NewReader(`{"propertyId": "prop-1", "requestedPrice": 0}`),
			httptestutil.JSON(),
		)
		err := handlers.PriceRequestRegisterHandler(pricing, props, 5)(c)
		assert.Equal(t, http.StatusBadRequest, httpError(t, err).Code)
		assert.Equal(t, 0, props.Calls.Get.Times())
	})
}

func TestPriceRequestApproveHandler(t *testing.T) {
	t.Run("approves with the reviewer from the session", func(t *testing.T) {
		pricing := dbmock.NewPricingInterface()
		pricing.Impl.Approve = func(ctx context.Context, id, reviewer, note string) (*kdb.PriceChangeRequest, error) {
			return &kdb.PriceChangeRequest{ID: id, Status: kdb.PriceRequestApproved}, nil
		}

		h, login := asStaff(t, kdb.RoleAdmin, handlers.PriceRequestApproveHandler(pricing, "id"))
		e := echo.New()
		c, resp := httptestutil.Put(e, "/api/price-requests/pcr-1/approve",
			strings.NewReader(`{"note": "agreed with owner"}`), httptestutil.JSON(), login,
		)
		c.SetParamNames("id")
		c.SetParamValues("pcr-1")

		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, resp.Result().StatusCode)

		approved := pricing.Calls.Approve[0]
		assert.Equal(t, "pcr-1", approved.ID)
		assert.Equal(t, "user-1", approved.ReviewerID)
		assert.Equal(t, "agreed with owner", approved.Note)
	})

	t.Run("second approval of the same request is 409", func(t *testing.T) {
		pricing := dbmock.NewPricingInterface()
		pricing.Impl.Approve = func(ctx context.Context, id, reviewer, note string) (*kdb.PriceChangeRequest, error) {
			return nil, kdb.ErrInvalidState
		}

		e := echo.New()
		c, _ := httptestutil.Put(e, "/api/price-requests/pcr-1/approve", nil)
		c.SetParamNames("id")
		c.SetParamValues("pcr-1")

		err := handlers.PriceRequestApproveHandler(pricing, "id")(c)
		assert.Equal(t, http.StatusConflict, httpError(t, err).Code)
	})
}

func TestPriceRequestCancelHandler(t *testing.T) {
	pricing := dbmock.NewPricingInterface()
	pricing.Impl.Cancel = func(ctx context.Context, id string) (*kdb.PriceChangeRequest, error) {
		return &kdb.PriceChangeRequest{ID: id, Status: kdb.PriceRequestCancelled}, nil
	}

	e := echo.New()
	c, resp := httptestutil.Put(e, "/api/price-requests/pcr-1/cancel", nil)
	c.SetParamNames("id")
	c.SetParamValues("pcr-1")

	require.NoError(t, handlers.PriceRequestCancelHandler(pricing, "id")(c))
	assert.Equal(t, http.StatusOK, resp.Result().StatusCode)
	assert.Equal(t, []string{"pcr-1"}, []string(pricing.Calls.Cancel))
}
