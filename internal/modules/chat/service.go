package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appcfg "github.com/notedesk/core/internal/config"
)

// SystemPromptOptionName is the settings key that overrides the configured
// chat system prompt at runtime.
const SystemPromptOptionName = "chat_system_prompt"

var (
	ErrMessageRequired = errors.New("message is required")
	ErrNoProvider      = errors.New("no chat provider is enabled")
	ErrUnknownProvider = errors.New("unknown chat provider")

	errEmptyReply = errors.New("empty response from AI")
)

// OptionReader exposes the settings store to the chat proxy without tying the
// two modules together.
type OptionReader interface {
	Value(name string) (string, bool)
}

type Service struct {
	cfg     *appcfg.AppConfig
	history *History
	options OptionReader
	log     *zap.Logger
}

func NewService(cfg *appcfg.AppConfig, history *History, options OptionReader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{cfg: cfg, history: history, options: options, log: log}
}

// Request is one inbound chat turn.
type Request struct {
	Message    string `json:"message" binding:"required"`
	SessionID  string `json:"session_id"`
	ProviderID string `json:"provider_id"`
	Model      string `json:"model"`
}

// Result carries the assistant reply and the session the turn was recorded in.
type Result struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
	Provider  string `json:"provider"`
}

// ProviderInfo is the client-safe view of a configured provider. Credentials
// and endpoints stay server-side.
type ProviderInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DefaultModel string `json:"default_model"`
}

// Providers lists the enabled providers.
func (s *Service) Providers() []ProviderInfo {
	enabled := s.cfg.EnabledAIProviders()
	out := make([]ProviderInfo, 0, len(enabled))
	for _, p := range enabled {
		out = append(out, ProviderInfo{
			ID:           p.ID,
			Name:         p.Name,
			Type:         p.Type,
			DefaultModel: p.DefaultModel,
		})
	}
	return out
}

func (s *Service) selectProvider(id string) (*appcfg.AIProvider, error) {
	enabled := s.cfg.EnabledAIProviders()
	if len(enabled) == 0 {
		return nil, ErrNoProvider
	}
	if strings.TrimSpace(id) == "" {
		return &enabled[0], nil
	}
	for i := range enabled {
		if enabled[i].ID == id {
			return &enabled[i], nil
		}
	}
	return nil, ErrUnknownProvider
}

func (s *Service) systemPrompt() string {
	if s.options != nil {
		if v, ok := s.options.Value(SystemPromptOptionName); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return s.cfg.AI.SystemPrompt
}

// Chat runs one turn: history plus the new message go to the provider, and
// the exchange is appended to the session on success.
func (s *Service) Chat(ctx context.Context, req *Request) (*Result, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}

	provider, err := s.selectProvider(req.ProviderID)
	if err != nil {
		return nil, err
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	past, err := s.history.Load(ctx, sessionID)
	if err != nil {
		s.log.Warn("chat history load failed", zap.String("session", sessionID), zap.Error(err))
		past = nil
	}

	messages := make([]Message, 0, len(past)+2)
	if prompt := s.systemPrompt(); strings.TrimSpace(prompt) != "" {
		messages = append(messages, Message{Role: "system", Content: prompt})
	}
	messages = append(messages, past...)
	messages = append(messages, Message{Role: "user", Content: req.Message})

	reply, err := callProvider(ctx, provider, req.Model, messages)
	if err != nil {
		return nil, err
	}

	if err := s.history.Append(ctx, sessionID,
		Message{Role: "user", Content: req.Message},
		Message{Role: "assistant", Content: reply},
	); err != nil {
		s.log.Warn("chat history append failed", zap.String("session", sessionID), zap.Error(err))
	}

	return &Result{Reply: reply, SessionID: sessionID, Provider: provider.ID}, nil
}

// SessionHistory returns the stored turns for a session.
func (s *Service) SessionHistory(ctx context.Context, sessionID string) ([]Message, error) {
	msgs, err := s.history.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []Message{}
	}
	return msgs, nil
}

// ClearSession forgets a session's history.
func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	return s.history.Clear(ctx, sessionID)
}
