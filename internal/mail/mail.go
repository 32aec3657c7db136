package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Message is one outbound email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Sender dispatches a single email. Satisfied by *Client; tests
// substitute fakes.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Client talks to the transactional-mail provider's HTTP API.
type Client struct {
	http *resty.Client
}

const defaultBaseURL = "https://api.resend.com"

func NewClient(apiKey string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(15 * time.Second).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json"),
	}
}

// providerError is the provider's error envelope.
type providerError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Send dispatches msg. Non-2xx responses surface the provider's
// message when one is present, otherwise a generic failure.
func (c *Client) Send(ctx context.Context, msg Message) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(msg).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var perr providerError
	if unmarshalErr := json.Unmarshal(resp.Body(), &perr); unmarshalErr == nil && perr.Message != "" {
		return fmt.Errorf("send email: %s", perr.Message)
	}
	return fmt.Errorf("send email: provider returned status %d", resp.StatusCode())
}
