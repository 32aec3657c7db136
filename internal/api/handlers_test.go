package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/evermore-weddings/evermore/internal/cms"
	"github.com/evermore-weddings/evermore/internal/contact"
	"github.com/evermore-weddings/evermore/internal/content"
	"github.com/evermore-weddings/evermore/internal/mail"
	"github.com/evermore-weddings/evermore/internal/pages"
	"github.com/evermore-weddings/evermore/internal/seo"
	"github.com/gofiber/fiber/v2"
)

// downQuerier simulates a content-store outage.
type downQuerier struct{}

func (downQuerier) Query(ctx context.Context, q cms.Query, params cms.Params, dest any) error {
	return errors.New("cms unreachable")
}

// okSender accepts every send; failSender rejects every send.
type okSender struct{ sent int }

func (s *okSender) Send(ctx context.Context, msg mail.Message) error {
	s.sent++
	return nil
}

type failSender struct{}

func (failSender) Send(ctx context.Context, msg mail.Message) error {
	return errors.New("provider down")
}

func testApp(sender mail.Sender) *fiber.App {
	cfg := cms.Config{ProjectID: "abc123", Dataset: "production"}
	site := &seo.Site{
		BaseURL:      "https://www.evermoreweddings.com",
		Name:         "Evermore Weddings & Events",
		DefaultImage: "https://www.evermoreweddings.com/images/og-default.jpg",
	}
	assembler := pages.NewAssembler(
		content.NewFetcher(downQuerier{}, nil, 0),
		site, cms.NewImageResolver(cfg), time.Hour)
	svc := contact.NewService(sender, nil,
		"Evermore Weddings <hello@evermoreweddings.com>", "hello@evermoreweddings.com")

	app := fiber.New()
	SetupRoutes(app, NewHandlers(assembler, svc))
	return app
}

func postContact(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestContactEndpointSuccess(t *testing.T) {
	sender := &okSender{}
	app := testApp(sender)

	status, out := postContact(t, app,
		`{"name": "Sam Lee", "email": "sam@example.com", "date": "2026-06-14", "venue": "Hotel del Coronado"}`)

	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if out["success"] != true {
		t.Errorf("body = %v", out)
	}
	if sender.sent != 2 {
		t.Errorf("sent %d emails, want 2", sender.sent)
	}
}

func TestContactEndpointMissingFields(t *testing.T) {
	sender := &okSender{}
	app := testApp(sender)

	status, out := postContact(t, app, `{"email": "sam@example.com"}`)
	if status != 400 {
		t.Fatalf("status = %d, want 400", status)
	}
	if out["error"] == nil {
		t.Error("400 response missing error field")
	}
	if sender.sent != 0 {
		t.Errorf("invalid submission sent %d emails", sender.sent)
	}
}

func TestContactEndpointSendFailure(t *testing.T) {
	app := testApp(failSender{})

	status, out := postContact(t, app, `{"name": "Sam Lee", "email": "sam@example.com"}`)
	if status != 500 {
		t.Fatalf("status = %d, want 500", status)
	}
	if out["error"] == nil {
		t.Error("500 response missing error field")
	}
}

func TestContactEndpointUnconfigured(t *testing.T) {
	app := testApp(nil)

	status, _ := postContact(t, app, `{"name": "Sam Lee", "email": "sam@example.com"}`)
	if status != 500 {
		t.Fatalf("status = %d, want 500", status)
	}
}

func TestRobotsEndpoint(t *testing.T) {
	app := testApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/robots.txt", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "Disallow: /studio/") {
		t.Errorf("robots.txt = %q", raw)
	}
}

func TestVenueDirectoryEndpoint(t *testing.T) {
	app := testApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/venues", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var page pages.Page
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &page); err != nil {
		t.Fatalf("decode directory payload: %v", err)
	}
	if page.Meta.Canonical != "https://www.evermoreweddings.com/venues" {
		t.Errorf("canonical = %q", page.Meta.Canonical)
	}
}

func TestBlogPostEndpointNotFound(t *testing.T) {
	// an outage on a single-document fetch is a 500, not a 404; a null
	// result is the 404. downQuerier errors, so expect 500 here.
	app := testApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/blog/no-such-post", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("status during outage = %d, want 500", resp.StatusCode)
	}
}

// nullQuerier answers every query with a null result.
type nullQuerier struct{}

func (nullQuerier) Query(ctx context.Context, q cms.Query, params cms.Params, dest any) error {
	return nil
}

func TestBlogPostEndpointNullResult(t *testing.T) {
	cfg := cms.Config{ProjectID: "abc123", Dataset: "production"}
	site := &seo.Site{
		BaseURL:      "https://www.evermoreweddings.com",
		Name:         "Evermore Weddings & Events",
		DefaultImage: "https://www.evermoreweddings.com/images/og-default.jpg",
	}
	assembler := pages.NewAssembler(
		content.NewFetcher(nullQuerier{}, nil, 0),
		site, cms.NewImageResolver(cfg), time.Hour)
	app := fiber.New()
	SetupRoutes(app, NewHandlers(assembler, contact.NewService(nil, nil, "", "")))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/blog/no-such-post", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var page pages.Page
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &page); err != nil {
		t.Fatalf("decode not-found payload: %v", err)
	}
	if !page.Meta.NoIndex || !strings.Contains(page.Meta.Title, "Not Found") {
		t.Errorf("not-found metadata = %+v", page.Meta)
	}
}
