package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"

	appcfg "github.com/notedesk/core/internal/config"
)

const (
	providerTimeout = 60 * time.Second
	maxReplyTokens  = 2048
)

// Message is one conversational turn, in chat-completions wire shape.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func callProvider(ctx context.Context, provider *appcfg.AIProvider, model string, messages []Message) (string, error) {
	if provider == nil {
		return "", errors.New("AI provider is nil")
	}
	if strings.TrimSpace(provider.APIKey) == "" {
		return "", errors.New("AI provider api key is empty")
	}

	switch normalizeProviderType(provider.Type) {
	case "gemini":
		return callGemini(ctx, provider, model, messages)
	case "openai-compatible", "openaicompatible":
		return callOpenAICompatible(ctx, provider, model, messages)
	default:
		return callNative(ctx, provider, model, messages)
	}
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}

func resolveModel(provider *appcfg.AIProvider, requested, fallback string) string {
	if m := strings.TrimSpace(requested); m != "" {
		return m
	}
	if m := strings.TrimSpace(provider.DefaultModel); m != "" {
		return m
	}
	return fallback
}

// callOpenAICompatible speaks the /v1/chat/completions dialect directly, since
// third-party gateways drift from the official SDK in small ways. A
// reasoning_content field, when present, is surfaced ahead of the reply.
func callOpenAICompatible(ctx context.Context, provider *appcfg.AIProvider, model string, messages []Message) (string, error) {
	endpoint := normalizeCompatibleEndpoint(provider.Endpoint)
	body, _ := json.Marshal(map[string]interface{}{
		"model":      resolveModel(provider, model, "gpt-4o-mini"),
		"messages":   messages,
		"max_tokens": maxReplyTokens,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(provider.APIKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: providerTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content          string `json:"content"`
				ReasoningContent string `json:"reasoning_content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", fmt.Errorf("chat provider error: %s", strings.TrimSpace(string(respBody)))
		}
		return "", err
	}
	if result.Error != nil && strings.TrimSpace(result.Error.Message) != "" {
		return "", fmt.Errorf("chat provider error: %s", result.Error.Message)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("chat provider error: %s", strings.TrimSpace(string(respBody)))
	}
	if strings.TrimSpace(result.Message) != "" && len(result.Choices) == 0 {
		return "", fmt.Errorf("chat provider error: %s", result.Message)
	}
	if len(result.Choices) == 0 {
		return "", errEmptyReply
	}

	msg := result.Choices[0].Message
	reply := msg.Content
	if thinking := strings.TrimSpace(msg.ReasoningContent); thinking != "" {
		reply = "Thinking: " + thinking + "\n\n" + reply
	}
	if strings.TrimSpace(reply) == "" {
		return "", errEmptyReply
	}
	return reply, nil
}

// callGemini speaks the generateContent REST surface. Gemini has no system
// role; system text rides as the first user part, and assistant turns map to
// the model role.
func callGemini(ctx context.Context, provider *appcfg.AIProvider, model string, messages []Message) (string, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(provider.Endpoint), "/")
	if endpoint == "" {
		endpoint = "https://generativelanguage.googleapis.com/v1beta"
	}
	modelID := resolveModel(provider, model, "gemini-2.0-flash")

	type part struct {
		Text string `json:"text"`
	}
	type content struct {
		Role  string `json:"role,omitempty"`
		Parts []part `json:"parts"`
	}

	var system string
	contents := make([]content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			system = m.Content
		case "assistant":
			contents = append(contents, content{Role: "model", Parts: []part{{Text: m.Content}}})
		default:
			contents = append(contents, content{Role: "user", Parts: []part{{Text: m.Content}}})
		}
	}
	if system != "" && len(contents) > 0 {
		contents[0].Parts = append([]part{{Text: system + "\n\n"}}, contents[0].Parts...)
	}

	body, _ := json.Marshal(map[string]interface{}{"contents": contents})

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		endpoint, neturl.PathEscape(modelID), neturl.QueryEscape(strings.TrimSpace(provider.APIKey)))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: providerTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", fmt.Errorf("chat provider error: %s", strings.TrimSpace(string(respBody)))
		}
		return "", err
	}
	if result.Error != nil && strings.TrimSpace(result.Error.Message) != "" {
		return "", fmt.Errorf("chat provider error: %s", result.Error.Message)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("chat provider error: %s", strings.TrimSpace(string(respBody)))
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errEmptyReply
	}
	text := result.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", errEmptyReply
	}
	return text, nil
}

// callNative routes openai and anthropic through their official SDKs.
func callNative(ctx context.Context, provider *appcfg.AIProvider, model string, messages []Message) (string, error) {
	lm, err := buildLanguageModel(provider, model)
	if err != nil {
		return "", err
	}
	resp, err := jetai.GenerateText(
		ctx,
		buildPromptMessages(messages),
		jetai.WithModel(lm),
		jetai.WithMaxOutputTokens(maxReplyTokens),
	)
	if err != nil {
		return "", err
	}
	return extractText(resp)
}

func buildPromptMessages(messages []Message) []jetapi.Message {
	out := make([]jetapi.Message, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, &jetapi.SystemMessage{Content: m.Content})
		case "assistant":
			out = append(out, &jetapi.AssistantMessage{Content: jetapi.ContentFromText(m.Content)})
		default:
			out = append(out, &jetapi.UserMessage{Content: jetapi.ContentFromText(m.Content)})
		}
	}
	return out
}

func extractText(resp *jetapi.Response) (string, error) {
	if resp == nil {
		return "", errEmptyReply
	}

	var full strings.Builder
	for _, block := range resp.Content {
		textBlock, ok := block.(*jetapi.TextBlock)
		if !ok || textBlock.Text == "" {
			continue
		}
		full.WriteString(textBlock.Text)
	}

	text := full.String()
	if strings.TrimSpace(text) == "" {
		return "", errEmptyReply
	}
	return text, nil
}

func buildLanguageModel(provider *appcfg.AIProvider, model string) (jetapi.LanguageModel, error) {
	apiKey := strings.TrimSpace(provider.APIKey)
	endpoint := strings.TrimSpace(provider.Endpoint)

	if normalizeProviderType(provider.Type) == "anthropic" {
		modelID := resolveModel(provider, model, "claude-haiku-4-5-20251001")

		opts := []anthropicoption.RequestOption{
			anthropicoption.WithAPIKey(apiKey),
			anthropicoption.WithMaxRetries(0),
		}
		if endpoint != "" {
			opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
		}

		client := anthropicclient.NewClient(opts...)
		return jetanthropic.NewLanguageModel(modelID, jetanthropic.WithClient(client)), nil
	}

	modelID := resolveModel(provider, model, "gpt-4o-mini")

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}

	client := openaiclient.NewClient(opts...)
	return jetopenai.NewLanguageModel(modelID, jetopenai.WithClient(client)), nil
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		if path == "" {
			path = "/v1"
		} else {
			path += "/v1"
		}
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}

// normalizeCompatibleEndpoint strips a trailing /v1 so the caller can append
// the full chat-completions path uniformly.
func normalizeCompatibleEndpoint(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return "https://api.openai.com"
	}

	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		cleaned := strings.TrimRight(base, "/")
		return strings.TrimSuffix(cleaned, "/v1")
	}

	path := strings.TrimRight(parsed.Path, "/")
	path = strings.TrimSuffix(path, "/v1")
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
