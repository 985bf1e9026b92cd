package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jackyeh168/points_bot/src/internal/domain/admin"
)

// ParseChatConfig turns a configured chat reference into a ChatConfig.
// Numeric values are chat ids; values starting with "@" are public usernames.
func ParseChatConfig(chat string) (tgbotapi.ChatConfig, error) {
	chat = strings.TrimSpace(chat)
	if strings.HasPrefix(chat, "@") && len(chat) > 1 {
		return tgbotapi.ChatConfig{SuperGroupUsername: chat}, nil
	}
	id, err := strconv.ParseInt(chat, 10, 64)
	if err != nil || id == 0 {
		return tgbotapi.ChatConfig{}, admin.ErrInvalidAdminSource.WithContext("chat", chat)
	}
	return tgbotapi.ChatConfig{ChatID: id}, nil
}

// AdminSource lists the administrators of the configured chat.
type AdminSource struct {
	api  ChatAdministratorsGetter
	chat tgbotapi.ChatConfig
}

// NewAdminSource creates an AdminSource for chat.
func NewAdminSource(api ChatAdministratorsGetter, chat string) (*AdminSource, error) {
	cfg, err := ParseChatConfig(chat)
	if err != nil {
		return nil, err
	}
	return &AdminSource{api: api, chat: cfg}, nil
}

// ListAdministrators returns the user ids of the chat administrators.
// Members without user information are skipped.
func (s *AdminSource) ListAdministrators() ([]int64, error) {
	members, err := s.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{ChatConfig: s.chat})
	if err != nil {
		return nil, fmt.Errorf("get chat administrators: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		if member.User == nil {
			continue
		}
		ids = append(ids, member.User.ID)
	}
	return ids, nil
}
