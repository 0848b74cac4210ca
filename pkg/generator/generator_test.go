package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/pkg/config"
	"github.com/postpilot/postpilot/pkg/domain"
)

// newTestServer returns an OpenAI-compatible chat completion endpoint
// answering with the given content for every request
func newTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func completionResponse(content string) string {
	msg, _ := json.Marshal(content)
	return fmt.Sprintf(`{"choices":[{"message":{"role":"assistant","content":%s}}]}`, msg)
}

func testGenerator(endpoint string) *Generator {
	cfg := config.GeneratorConfig{
		Endpoint:    endpoint,
		APIKey:      "test-key",
		Model:       "test-model",
		Temperature: 0.7,
		MaxTokens:   1000,
	}
	profile := config.ProfileConfig{
		Name:        "Acme Coffee",
		Description: "Small-batch coffee roastery",
		Tone:        "friendly",
		Audience:    "local coffee lovers",
	}
	return New(cfg, profile)
}

func TestGenerator_Generate(t *testing.T) {
	batch := `[
		{"platform":"linkedin","topic":"Meet our roastmaster","body":"Behind every cup is a person.","media_suggestion":"portrait photo"},
		{"platform":"twitter","topic":"Fresh roast drop","body":"New beans just landed."},
		{"platform":"twitter","topic":"Weekend hours","body":"We are open late on Saturday."}
	]`

	var gotPrompt string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		gotPrompt = req.Messages[1].Content
		fmt.Fprint(w, completionResponse(batch))
	})

	gen := testGenerator(srv.URL)
	items, err := gen.Generate(context.Background(), Request{
		Counts: map[domain.Platform]int{
			domain.PlatformLinkedIn: 1,
			domain.PlatformTwitter:  2,
		},
		AvoidLists: map[string][]string{
			"topics": {"summer sale", "loyalty program"},
		},
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, []domain.Platform{domain.PlatformLinkedIn}, items[0].Platforms)
	assert.Equal(t, "Meet our roastmaster", items[0].Topic)
	assert.Equal(t, "portrait photo", items[0].MediaRef)
	assert.Equal(t, domain.StatusDraft, items[0].Status)
	assert.NotEmpty(t, items[0].ID)

	// prompt carries profile, counts and avoid hints
	assert.Contains(t, gotPrompt, "Acme Coffee")
	assert.Contains(t, gotPrompt, "1 item(s) for linkedin")
	assert.Contains(t, gotPrompt, "2 item(s) for twitter")
	assert.Contains(t, gotPrompt, "summer sale")
}

func TestGenerator_GenerateClampsToRequestedCounts(t *testing.T) {
	batch := `[
		{"platform":"twitter","topic":"one","body":"a"},
		{"platform":"twitter","topic":"two","body":"b"},
		{"platform":"twitter","topic":"three","body":"c"},
		{"platform":"instagram","topic":"unasked","body":"d"}
	]`
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, completionResponse(batch))
	})

	gen := testGenerator(srv.URL)
	items, err := gen.Generate(context.Background(), Request{
		Counts: map[domain.Platform]int{domain.PlatformTwitter: 2},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, []domain.Platform{domain.PlatformTwitter}, item.Platforms)
	}
}

func TestGenerator_GenerateSanitizesMarkup(t *testing.T) {
	batch := `[{"platform":"email","topic":"<b>October deals</b>","body":"Hello <script>alert(1)</script>friends"}]`
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, completionResponse(batch))
	})

	gen := testGenerator(srv.URL)
	items, err := gen.Generate(context.Background(), Request{
		Counts: map[domain.Platform]int{domain.PlatformEmail: 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "October deals", items[0].Topic)
	assert.NotContains(t, items[0].Body, "<script>")
}

func TestGenerator_GenerateRetriesMalformedJSON(t *testing.T) {
	calls := 0
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, completionResponse("sorry, no JSON here"))
			return
		}
		fmt.Fprint(w, completionResponse(`[{"platform":"twitter","topic":"ok","body":"fine"}]`))
	})

	gen := testGenerator(srv.URL)
	items, err := gen.Generate(context.Background(), Request{
		Counts: map[domain.Platform]int{domain.PlatformTwitter: 1},
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, calls)
}

func TestGenerator_GenerateMalformedExhausted(t *testing.T) {
	calls := 0
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		fmt.Fprint(w, completionResponse("still not JSON"))
	})

	gen := testGenerator(srv.URL)
	_, err := gen.Generate(context.Background(), Request{
		Counts: map[domain.Platform]int{domain.PlatformTwitter: 1},
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls, "malformed responses get re-asked twice")
	assert.True(t, errors.Is(err, errMalformedResponse))

	genErr, ok := domain.AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.GenerationOther, genErr.Kind)
	assert.False(t, genErr.Retryable())
}

func TestGenerator_GenerateEmptyResult(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, completionResponse(`[]`))
	})

	gen := testGenerator(srv.URL)
	_, err := gen.Generate(context.Background(), Request{
		Counts: map[domain.Platform]int{domain.PlatformTwitter: 1},
	})
	require.Error(t, err)

	genErr, ok := domain.AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.GenerationEmpty, genErr.Kind)
	assert.True(t, genErr.Retryable())
}

func TestGenerator_GenerateProviderUnavailable(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	})

	gen := testGenerator(srv.URL)
	_, err := gen.Generate(context.Background(), Request{
		Counts: map[domain.Platform]int{domain.PlatformTwitter: 1},
	})
	require.Error(t, err)

	genErr, ok := domain.AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.GenerationNoProvider, genErr.Kind)
	assert.True(t, genErr.Retryable())
}

func TestGenerator_GenerateUnreachableProvider(t *testing.T) {
	// port 1 refuses connections
	gen := testGenerator("http://127.0.0.1:1/v1")
	_, err := gen.Generate(context.Background(), Request{
		Counts: map[domain.Platform]int{domain.PlatformTwitter: 1},
	})
	require.Error(t, err)

	genErr, ok := domain.AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.GenerationNoProvider, genErr.Kind)
}

func TestGenerator_GenerateZeroCounts(t *testing.T) {
	gen := testGenerator("http://127.0.0.1:1/v1")
	items, err := gen.Generate(context.Background(), Request{Counts: map[domain.Platform]int{}})
	require.NoError(t, err)
	assert.Empty(t, items)
}
