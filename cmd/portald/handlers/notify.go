package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	"github.com/psmphuket/portal/pkg/messaging"
)

// NotifyWhatsAppHandler sends a single WhatsApp message through the
// configured provider. Provider failures come back as 502 with the
// provider's own message.
func NotifyWhatsAppHandler(messenger messaging.Messenger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			To   string `json:"to"`
			Body string `json:"body"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if body.To == "" || body.Body == "" {
			return apierr.BadRequest("to and body are required", nil)
		}

		sid, err := messenger.SendWhatsApp(ctx, body.To, body.Body)
		if err != nil {
			return apierr.BadGateway("whatsapp send failed", err)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"sid": sid,
			"to":  body.To,
		})
	}
}
