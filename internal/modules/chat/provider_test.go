package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcfg "github.com/notedesk/core/internal/config"
)

func compatProvider(endpoint string) *appcfg.AIProvider {
	return &appcfg.AIProvider{
		ID:           "gw",
		Name:         "Gateway",
		Type:         "openai-compatible",
		APIKey:       "sk-test",
		Endpoint:     endpoint,
		DefaultModel: "test-model",
		Enabled:      true,
	}
}

func TestCallOpenAICompatible(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "hello there"}},
			},
		})
	}))
	defer srv.Close()

	reply, err := callOpenAICompatible(context.Background(), compatProvider(srv.URL), "", []Message{
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", reply)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
}

func TestCallOpenAICompatibleReasoningPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{
					"content":           "the answer",
					"reasoning_content": "working it out",
				}},
			},
		})
	}))
	defer srv.Close()

	reply, err := callOpenAICompatible(context.Background(), compatProvider(srv.URL), "", []Message{
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Thinking: working it out\n\nthe answer", reply)
}

func TestCallOpenAICompatibleSurfacesErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Invalid API key"},
		})
	}))
	defer srv.Close()

	_, err := callOpenAICompatible(context.Background(), compatProvider(srv.URL), "", []Message{
		{Role: "user", Content: "hi"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestCallGemini(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Contents []struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "gemini says hi"}},
				}},
			},
		})
	}))
	defer srv.Close()

	provider := &appcfg.AIProvider{
		ID: "gem", Type: "gemini", APIKey: "g-key",
		Endpoint: srv.URL, DefaultModel: "gemini-2.0-flash", Enabled: true,
	}
	reply, err := callGemini(context.Background(), provider, "", []Message{
		{Role: "system", Content: "be terse"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: "again"},
	})
	require.NoError(t, err)
	assert.Equal(t, "gemini says hi", reply)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)

	// system text rides in the first user turn, assistant maps to model
	require.Len(t, gotBody.Contents, 3)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	require.Len(t, gotBody.Contents[0].Parts, 2)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "be terse")
	assert.Equal(t, "model", gotBody.Contents[1].Role)
}

func TestNormalizeCompatibleEndpoint(t *testing.T) {
	cases := map[string]string{
		"":                            "https://api.openai.com",
		"https://api.openai.com/v1":   "https://api.openai.com",
		"https://api.openai.com/v1/":  "https://api.openai.com",
		"https://gw.example.com":      "https://gw.example.com",
		"https://gw.example.com/base": "https://gw.example.com/base",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeCompatibleEndpoint(in), "input %q", in)
	}
}

func TestNormalizeOpenAIBaseURL(t *testing.T) {
	cases := map[string]string{
		"": "",
		"https://gw.example.com":      "https://gw.example.com/v1",
		"https://gw.example.com/v1":   "https://gw.example.com/v1",
		"https://gw.example.com/v1/":  "https://gw.example.com/v1",
		"https://gw.example.com/base": "https://gw.example.com/base/v1",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeOpenAIBaseURL(in), "input %q", in)
	}
}
