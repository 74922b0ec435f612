package sms

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/hosteldesk/outpass-api/pkg/config"
)

// TwilioSender delivers SMS notifications through the Twilio messages API.
type TwilioSender struct {
	client      *twilio.RestClient
	from        string
	countryCode string
}

// NewTwilioSender builds a sender from Twilio credentials.
func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{client: client, from: cfg.FromNumber, countryCode: cfg.CountryCode}
}

// Send dispatches body to the given local-format number and returns the
// provider message SID. The configured country code is prefixed unless the
// number already carries one.
func (s *TwilioSender) Send(to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(s.Normalize(to))
	params.SetBody(body)

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio send: %w", err)
	}
	if msg.Sid == nil {
		return "", nil
	}
	return *msg.Sid, nil
}

// Normalize prefixes the configured country code to a stored local number.
func (s *TwilioSender) Normalize(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "+") {
		return number
	}
	return s.countryCode + number
}
