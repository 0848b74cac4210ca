// Package generator produces draft marketing content through an
// OpenAI-compatible chat completion endpoint.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/postpilot/postpilot/pkg/config"
	"github.com/postpilot/postpilot/pkg/domain"
)

// Generator produces draft content items via an LLM
type Generator struct {
	client    *openai.Client
	config    config.GeneratorConfig
	profile   config.ProfileConfig
	systemMsg string
	sanitizer *bluemonday.Policy
}

// New creates a new LLM content generator
func New(cfg config.GeneratorConfig, profile config.ProfileConfig) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Generator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		profile:   profile,
		systemMsg: systemMsg,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// default system prompt for marketing content generation
const defaultSystemPrompt = `You are a marketing copywriter generating social media and email content for a business.

Each generated item must contain:
- platform: the target platform, exactly as requested
- topic: a short topic/subject line for the piece (max 80 chars)
- body: the full post or email body, written for the platform's conventions and length norms
- media_suggestion: optional short description of an image that would fit, empty string if none

Rules:
- Match the requested tone and audience.
- Never repeat or closely paraphrase any topic, title or subject listed as "recently used".
- Email items get a subject-line style topic; social items get a hook-style opening line.
- Respond with a JSON array of item objects and nothing else.`

// Request carries everything the generator needs for one batch
type Request struct {
	Counts     map[domain.Platform]int // items per platform, zero entries skipped
	AvoidLists map[string][]string     // category name -> recently used values to avoid
}

// Generate produces draft content items for the requested platforms.
// Failures are classified via domain.GenerationError so callers can decide
// on retries without inspecting message text.
func (g *Generator) Generate(ctx context.Context, req Request) ([]*domain.ContentItem, error) {
	total := 0
	for _, n := range req.Counts {
		total += n
	}
	if total == 0 {
		return []*domain.ContentItem{}, nil
	}

	prompt := g.buildPrompt(req)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       g.config.Model,
			Temperature: float32(g.config.Temperature),
			MaxTokens:   g.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: g.systemMsg},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}

		resp, err := g.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, classifyRequestError(err)
		}

		if len(resp.Choices) == 0 {
			return nil, &domain.GenerationError{Kind: domain.GenerationEmpty, Cause: errors.New("no choices in response")}
		}

		items, err := g.parseResponse(resp.Choices[0].Message.Content, req.Counts)
		if err == nil {
			if len(items) == 0 {
				return nil, &domain.GenerationError{Kind: domain.GenerationEmpty, Cause: errors.New("no usable items in response")}
			}
			return items, nil
		}

		lastErr = err

		// malformed JSON is worth re-asking, anything else is not
		if errors.Is(err, errMalformedResponse) {
			continue
		}
		return nil, &domain.GenerationError{Kind: domain.GenerationOther, Cause: err}
	}

	return nil, &domain.GenerationError{Kind: domain.GenerationOther, Cause: fmt.Errorf("failed after 3 attempts: %w", lastErr)}
}

// classifyRequestError maps transport and API errors to generation error kinds
func classifyRequestError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &domain.GenerationError{Kind: domain.GenerationNoProvider, Cause: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		// 5xx and 429 mean the provider is there but unable to serve
		if apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429 {
			return &domain.GenerationError{Kind: domain.GenerationNoProvider, Cause: err}
		}
		return &domain.GenerationError{Kind: domain.GenerationOther, Cause: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode >= 500 || reqErr.HTTPStatusCode == 429 {
			return &domain.GenerationError{Kind: domain.GenerationNoProvider, Cause: err}
		}
		return &domain.GenerationError{Kind: domain.GenerationOther, Cause: err}
	}

	return &domain.GenerationError{Kind: domain.GenerationOther, Cause: err}
}

// buildPrompt creates the user prompt for the LLM
func (g *Generator) buildPrompt(req Request) string {
	var sb strings.Builder

	sb.WriteString("Business profile:\n")
	if g.profile.Name != "" {
		sb.WriteString(fmt.Sprintf("- Name: %s\n", g.profile.Name))
	}
	if g.profile.Description != "" {
		sb.WriteString(fmt.Sprintf("- About: %s\n", g.profile.Description))
	}
	sb.WriteString(fmt.Sprintf("- Tone: %s\n", g.profile.Tone))
	if g.profile.Audience != "" {
		sb.WriteString(fmt.Sprintf("- Audience: %s\n", g.profile.Audience))
	}
	sb.WriteString("\n")

	// stable platform order keeps prompts reproducible for the same request
	sb.WriteString("Generate the following items:\n")
	for _, platform := range domain.Platforms() {
		if n := req.Counts[platform]; n > 0 {
			sb.WriteString(fmt.Sprintf("- %d item(s) for %s\n", n, platform))
		}
	}
	sb.WriteString("\n")

	categories := make([]string, 0, len(req.AvoidLists))
	for category := range req.AvoidLists {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		values := req.AvoidLists[category]
		if len(values) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("Recently used %s (do not repeat):\n", category))
		for _, v := range values {
			sb.WriteString(fmt.Sprintf("- %s\n", v))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Respond with a JSON array of item objects.")
	return sb.String()
}

// errMalformedResponse marks responses the re-ask loop may recover from
var errMalformedResponse = errors.New("malformed response")

// generatedItem is the wire shape the LLM responds with
type generatedItem struct {
	Platform        string `json:"platform"`
	Topic           string `json:"topic"`
	Body            string `json:"body"`
	MediaSuggestion string `json:"media_suggestion"`
}

// parseResponse parses the LLM response into draft content items
func (g *Generator) parseResponse(content string, counts map[domain.Platform]int) ([]*domain.ContentItem, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("%w: no json array found in response", errMalformedResponse)
	}

	var raw []generatedItem
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: parse json array: %v", errMalformedResponse, err)
	}

	// keep only items for requested platforms, clamped to the asked counts
	remaining := make(map[domain.Platform]int, len(counts))
	for p, n := range counts {
		remaining[p] = n
	}

	items := make([]*domain.ContentItem, 0, len(raw))
	for _, r := range raw {
		platform := domain.Platform(strings.ToLower(strings.TrimSpace(r.Platform)))
		if !domain.ValidPlatform(platform) || remaining[platform] <= 0 {
			continue
		}

		topic := strings.TrimSpace(g.sanitizer.Sanitize(r.Topic))
		body := strings.TrimSpace(g.sanitizer.Sanitize(r.Body))
		if topic == "" || body == "" {
			continue
		}

		remaining[platform]--
		items = append(items, &domain.ContentItem{
			ID:        uuid.NewString(),
			Platforms: []domain.Platform{platform},
			Topic:     topic,
			Body:      body,
			MediaRef:  strings.TrimSpace(r.MediaSuggestion),
			Status:    domain.StatusDraft,
		})
	}

	return items, nil
}
