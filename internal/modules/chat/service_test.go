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

type fakeOptions map[string]string

func (f fakeOptions) Value(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}

func chatService(t *testing.T, providers []appcfg.AIProvider, options OptionReader) *Service {
	t.Helper()
	cfg := &appcfg.AppConfig{
		AI: appcfg.AIConfig{
			Providers:    providers,
			SystemPrompt: "be helpful",
		},
	}
	return NewService(cfg, NewHistory(nil), options, nil)
}

func echoProviderServer(t *testing.T, reply string, onRequest func(body map[string]interface{})) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if onRequest != nil {
			onRequest(body)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		})
	}))
}

func TestChatAssignsSessionID(t *testing.T) {
	srv := echoProviderServer(t, "hi back", nil)
	defer srv.Close()

	svc := chatService(t, []appcfg.AIProvider{*compatProvider(srv.URL)}, nil)
	result, err := svc.Chat(context.Background(), &Request{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi back", result.Reply)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "gw", result.Provider)
}

func TestChatSendsSystemPrompt(t *testing.T) {
	var messages []interface{}
	srv := echoProviderServer(t, "ok", func(body map[string]interface{}) {
		messages = body["messages"].([]interface{})
	})
	defer srv.Close()

	svc := chatService(t, []appcfg.AIProvider{*compatProvider(srv.URL)}, nil)
	_, err := svc.Chat(context.Background(), &Request{Message: "hi"})
	require.NoError(t, err)

	require.NotEmpty(t, messages)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "be helpful", first["content"])
}

func TestChatSystemPromptOverrideFromSettings(t *testing.T) {
	var messages []interface{}
	srv := echoProviderServer(t, "ok", func(body map[string]interface{}) {
		messages = body["messages"].([]interface{})
	})
	defer srv.Close()

	opts := fakeOptions{SystemPromptOptionName: "answer in haiku"}
	svc := chatService(t, []appcfg.AIProvider{*compatProvider(srv.URL)}, opts)
	_, err := svc.Chat(context.Background(), &Request{Message: "hi"})
	require.NoError(t, err)

	first := messages[0].(map[string]interface{})
	assert.Equal(t, "answer in haiku", first["content"])
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := chatService(t, []appcfg.AIProvider{{ID: "p", Type: "openai-compatible", APIKey: "k", Enabled: true}}, nil)
	_, err := svc.Chat(context.Background(), &Request{Message: "   "})
	assert.ErrorIs(t, err, ErrMessageRequired)
}

func TestChatNoEnabledProvider(t *testing.T) {
	svc := chatService(t, []appcfg.AIProvider{{ID: "p", Type: "openai", APIKey: "k", Enabled: false}}, nil)
	_, err := svc.Chat(context.Background(), &Request{Message: "hi"})
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestChatUnknownProvider(t *testing.T) {
	svc := chatService(t, []appcfg.AIProvider{{ID: "p", Type: "openai", APIKey: "k", Enabled: true}}, nil)
	_, err := svc.Chat(context.Background(), &Request{Message: "hi", ProviderID: "nope"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestProvidersHideCredentials(t *testing.T) {
	svc := chatService(t, []appcfg.AIProvider{
		{ID: "a", Name: "A", Type: "openai", APIKey: "secret", Endpoint: "https://x", DefaultModel: "m", Enabled: true},
		{ID: "b", Name: "B", Type: "gemini", APIKey: "secret2", Enabled: false},
	}, nil)

	providers := svc.Providers()
	require.Len(t, providers, 1)
	assert.Equal(t, "a", providers[0].ID)

	raw, err := json.Marshal(providers)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "https://x")
}
