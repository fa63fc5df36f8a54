// Package messaging wraps the WhatsApp notification provider.
package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Messenger sends a WhatsApp text and returns the provider message id.
type Messenger interface {
	SendWhatsApp(ctx context.Context, to string, body string) (string, error)
}

// Twilio implements Messenger on the Twilio REST API.
type Twilio struct {
	client *twilio.RestClient
	from   string
}

func NewTwilio(accountSID, authToken, fromNumber string) (*Twilio, error) {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil, fmt.Errorf("twilio credentials are not configured")
	}
	return &Twilio{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: fromNumber,
	}, nil
}

var _ Messenger = &Twilio{}

func (t *Twilio) SendWhatsApp(_ context.Context, to string, body string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(whatsappAddr(to))
	params.SetFrom(whatsappAddr(t.from))
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("whatsapp send failed: %w", err)
	}
	if resp.Sid == nil {
		return "", fmt.Errorf("whatsapp send returned no message sid")
	}
	return *resp.Sid, nil
}

// Disabled stands in when no provider credentials are configured. Every
// send fails, so the rest of the portal keeps serving.
type Disabled struct{}

var _ Messenger = Disabled{}

func (Disabled) SendWhatsApp(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("whatsapp messaging is not configured")
}

func whatsappAddr(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
