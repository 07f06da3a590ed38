package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OpenAIOptions configures the OpenAI-backed drafter. Fallback defaults
// to the template drafter when nil; OnFallback receives the reason each
// time the chain degrades.
type OpenAIOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	Organization string
	HTTPClient   *http.Client
	Fallback     Drafter
	OnFallback   func(reason string, err error)
}

type OpenAIDrafter struct {
	apiKey       string
	model        string
	baseURL      string
	organization string
	client       *http.Client
	fallback     Drafter
	onFallback   func(reason string, err error)
}

const (
	openAIDefaultTimeout = 15 * time.Second
	defaultOpenAIModel   = "gpt-3.5-turbo"

	// Output stays bounded and mildly creative; the prompt asks for a
	// sub-200-word email.
	openAIMaxTokens   = 500
	openAITemperature = 0.7

	systemPrompt = "You are an expert at writing professional cold emails for job applications. " +
		"Create personalized, compelling emails that highlight relevant experience and show genuine interest in the company and role."
)

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAIDrafter(opts OpenAIOptions) (*OpenAIDrafter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openAIDefaultTimeout}
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = NewTemplateDrafter()
	}
	return &OpenAIDrafter{
		apiKey:       strings.TrimSpace(opts.APIKey),
		model:        model,
		baseURL:      baseURL,
		organization: strings.TrimSpace(opts.Organization),
		client:       client,
		fallback:     fallback,
		onFallback:   opts.OnFallback,
	}, nil
}

// Draft submits one fixed system+user prompt pair to the chat-completion
// endpoint. Transport errors, non-2xx statuses, and empty responses all
// degrade to the fallback drafter; the caller never sees a provider
// error.
func (o *OpenAIDrafter) Draft(ctx context.Context, req Request) (string, error) {
	payload := openAIChatRequest{
		Model:       o.model,
		MaxTokens:   openAIMaxTokens,
		Temperature: openAITemperature,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(req)},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return o.useFallback(ctx, req, "encode_request", err)
	}
	endpoint := fmt.Sprintf("%s/chat/completions", o.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return o.useFallback(ctx, req, "build_request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	if o.organization != "" {
		httpReq.Header.Set("OpenAI-Organization", o.organization)
	}
	resp, err := o.client.Do(httpReq)
	if err != nil {
		return o.useFallback(ctx, req, "http_request", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return o.useFallback(ctx, req, fmt.Sprintf("http_%d", resp.StatusCode), fmt.Errorf("openai status %d", resp.StatusCode))
	}
	var out openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return o.useFallback(ctx, req, "decode_response", err)
	}
	if len(out.Choices) == 0 {
		return o.useFallback(ctx, req, "empty_choices", errors.New("no choices"))
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return o.useFallback(ctx, req, "empty_response", errors.New("empty response"))
	}
	return text, nil
}

func (o *OpenAIDrafter) useFallback(ctx context.Context, req Request, reason string, cause error) (string, error) {
	if o.onFallback != nil {
		o.onFallback(reason, cause)
	}
	return o.fallback.Draft(ctx, req)
}

func buildUserPrompt(req Request) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create a professional cold email for a %s position at %s. ", req.Position, req.TargetCompany)
	fmt.Fprintf(sb, "Use this background information to personalize the email: %s. ", req.Content)
	sb.WriteString("\n\nThe email should:\n")
	sb.WriteString("- Be professional but personable\n")
	sb.WriteString("- Highlight relevant experience from the background\n")
	sb.WriteString("- Show specific interest in the company\n")
	sb.WriteString("- Be concise (under 200 words)\n")
	sb.WriteString("- Include a clear call to action\n")
	sb.WriteString("- Not include placeholder text like [Your Name]\n\n")
	sb.WriteString("Return only the email body, no subject line.")
	return sb.String()
}

var _ Drafter = (*OpenAIDrafter)(nil)
