package twilio

import (
	"safetravelbuddy/server/logger"
	"safetravelbuddy/shared"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var logg = logger.NewLogger()

type ClientWrapper struct {
	client   *twilio.RestClient
	config   shared.TwilioConfig
	testMode bool
}

func NewClient(config shared.TwilioConfig, testMode bool) *ClientWrapper {
	client := twilio.NewRestClientWithParams(twilio.RestClientParams{
		Username: config.AccountSid,
		Password: config.AuthToken,
	})

	return &ClientWrapper{
		client:   client,
		config:   config,
		testMode: testMode,
	}
}

func (cw *ClientWrapper) SendMessage(to, msg string) error {
	// No sms is sent in test mode, the message is only logged
	if cw.testMode {
		logg.Infof("[test mode] sms to %v: %v", to, msg)
		return nil
	}

	params := &openapi.CreateMessageParams{}
	params.SetMessagingServiceSid(cw.config.MessagingServiceSid)
	params.SetTo(to)
	params.SetBody(msg)

	resp, err := cw.client.ApiV2010.CreateMessage(params)
	if err != nil {
		return err
	}

	if resp.ErrorMessage != nil {
		logg.Errorf("twilio: %v", *resp.ErrorMessage)
	}

	return nil
}
