package draft

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestDrafter(t *testing.T, rt roundTripFunc, onFallback func(string, error)) *OpenAIDrafter {
	t.Helper()
	d, err := NewOpenAIDrafter(OpenAIOptions{
		APIKey:     "dummy",
		HTTPClient: &http.Client{Transport: rt},
		OnFallback: onFallback,
	})
	if err != nil {
		t.Fatalf("NewOpenAIDrafter returned error: %v", err)
	}
	return d
}

func TestOpenAIDrafterRequiresAPIKey(t *testing.T) {
	t.Parallel()
	if _, err := NewOpenAIDrafter(OpenAIOptions{APIKey: "  "}); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestOpenAIDrafterTransportErrorFallsBack(t *testing.T) {
	var capturedReason string
	d := newTestDrafter(t, func(*http.Request) (*http.Response, error) {
		return nil, errors.New("boom")
	}, func(reason string, err error) {
		capturedReason = reason
	})
	body, err := d.Draft(context.Background(), Request{Content: "worked in fintech", TargetCompany: "Acme", Position: "SRE"})
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}
	if capturedReason != "http_request" {
		t.Fatalf("fallback reason = %q, want %q", capturedReason, "http_request")
	}
	if !strings.Contains(body, "Acme") || !strings.Contains(body, "SRE") {
		t.Fatalf("fallback body missing company/position: %q", body)
	}
}

func TestOpenAIDrafterNon2xxFallsBack(t *testing.T) {
	var capturedReason string
	d := newTestDrafter(t, func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader(`{"error":"overloaded"}`)),
		}, nil
	}, func(reason string, err error) {
		capturedReason = reason
	})
	body, err := d.Draft(context.Background(), Request{Content: "degree in cs", TargetCompany: "Globex", Position: "Intern"})
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}
	if capturedReason != "http_503" {
		t.Fatalf("fallback reason = %q, want %q", capturedReason, "http_503")
	}
	if body == "" || !strings.Contains(body, "Globex") || !strings.Contains(body, "Intern") {
		t.Fatalf("fallback body missing company/position: %q", body)
	}
}

func TestOpenAIDrafterEmptyContentFallsBack(t *testing.T) {
	var capturedReason string
	d := newTestDrafter(t, func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"choices":[{"message":{"content":"   "}}]}`)),
		}, nil
	}, func(reason string, err error) {
		capturedReason = reason
	})
	body, err := d.Draft(context.Background(), Request{Content: "x", TargetCompany: "Initech", Position: "Dev"})
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}
	if capturedReason != "empty_response" {
		t.Fatalf("fallback reason = %q, want %q", capturedReason, "empty_response")
	}
	if body == "" {
		t.Fatal("expected non-empty fallback body")
	}
}

func TestOpenAIDrafterSuccessReturnsProviderText(t *testing.T) {
	var requestBody string
	d := newTestDrafter(t, func(r *http.Request) (*http.Response, error) {
		raw, _ := io.ReadAll(r.Body)
		requestBody = string(raw)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"choices":[{"message":{"content":"  Hello from the model.  "}}]}`)),
		}, nil
	}, func(reason string, err error) {
		t.Fatalf("unexpected fallback: %s", reason)
	})
	body, err := d.Draft(context.Background(), Request{Content: "built compilers", TargetCompany: "Hooli", Position: "Engineer"})
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}
	if body != "Hello from the model." {
		t.Fatalf("body = %q, want trimmed provider text", body)
	}
	if !strings.Contains(requestBody, `"max_tokens":500`) {
		t.Fatalf("request missing max_tokens: %s", requestBody)
	}
	if !strings.Contains(requestBody, `"temperature":0.7`) {
		t.Fatalf("request missing temperature: %s", requestBody)
	}
	if !strings.Contains(requestBody, "Hooli") || !strings.Contains(requestBody, "built compilers") {
		t.Fatalf("user prompt missing inputs: %s", requestBody)
	}
}
