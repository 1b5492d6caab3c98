package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/notedesk/core/internal/pkg/redis"
)

const (
	historyKeyPrefix = "notedesk:chat:history:%s"
	historyTTL       = 24 * time.Hour

	// maxHistoryTurns bounds the context sent to providers. Older turns fall
	// off; the stored list is trimmed to the same window.
	maxHistoryTurns = 10
)

// History persists per-session conversation turns in Redis.
type History struct {
	rdb *redis.Client
}

func NewHistory(rdb *redis.Client) *History {
	return &History{rdb: rdb}
}

func historyKey(sessionID string) string {
	return fmt.Sprintf(historyKeyPrefix, sessionID)
}

// Load returns the stored turns for a session, oldest first. A missing or
// unreadable session yields an empty history, never an error surface to chat.
func (h *History) Load(ctx context.Context, sessionID string) ([]Message, error) {
	if h.rdb == nil {
		return nil, nil
	}
	raw, err := h.rdb.Get(ctx, historyKey(sessionID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var msgs []Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil, nil
	}
	return msgs, nil
}

// Append records a user/assistant exchange and refreshes the session TTL.
func (h *History) Append(ctx context.Context, sessionID string, turns ...Message) error {
	if h.rdb == nil {
		return nil
	}
	msgs, err := h.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	msgs = append(msgs, turns...)
	if len(msgs) > maxHistoryTurns {
		msgs = msgs[len(msgs)-maxHistoryTurns:]
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	return h.rdb.Set(ctx, historyKey(sessionID), string(data), historyTTL)
}

// Clear forgets a session.
func (h *History) Clear(ctx context.Context, sessionID string) error {
	if h.rdb == nil {
		return nil
	}
	return h.rdb.Del(ctx, historyKey(sessionID))
}
