// Package handlers wires the portal API operations onto narrow DB and
// provider interfaces. Each constructor takes only what the operation
// touches and returns an echo.HandlerFunc.
package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
)

// ListPage is the envelope of every paged collection response.
type ListPage[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

func listPage[T any](items []T, total int64) ListPage[T] {
	if items == nil {
		items = []T{}
	}
	return ListPage[T]{Items: items, Total: total}
}

// decodeJSON enforces the JSON content type and decodes the body.
func decodeJSON(c echo.Context, into any) error {
	req := c.Request()
	contentType := strings.ToLower(req.Header.Get("content-type"))
	if !strings.HasPrefix(contentType, "application/json") {
		return apierr.BadRequest(
			"unexpected content type. it should be application/json", nil,
		)
	}
	if err := json.NewDecoder(req.Body).Decode(into); err != nil {
		return apierr.BadRequest("can not understand the requested json", err)
	}
	return nil
}

// fromDBError maps the storage sentinels onto the API error envelope.
func fromDBError(err error) error {
	switch {
	case errors.Is(err, kdb.ErrMissing):
		return apierr.NotFound()
	case errors.Is(err, kdb.ErrConflict):
		return apierr.Conflict("conflicting record", apierr.WithError(err))
	case errors.Is(err, kdb.ErrInvalidState):
		return apierr.Conflict(
			"record is not in a state allowing this operation",
			apierr.WithError(err),
		)
	}
	return apierr.InternalServerError(err)
}

func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

func queryInt64(c echo.Context, name string) int64 {
	value, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// queryBool parses a tri-state query param: nil when absent or malformed.
func queryBool(c echo.Context, name string) *bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return nil
	}
	return &value
}
