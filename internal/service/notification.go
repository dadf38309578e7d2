package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/logger"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/repository"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/telegram"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultDeliveryLogLimit = 100

// NotificationService delivers alerts to chat channels and manages messaging settings
type NotificationService struct {
	repo          repository.NotificationRepositoryInterface
	messenger     MessengerInterface
	matcher       notify.AssetTypeMatcher
	clock         schedule.Clock
	validator     *validator.Validate
	fallbackToken string
}

// NewNotificationService creates a new notification service.
// fallbackToken is used when no settings are stored.
func NewNotificationService(
	repo repository.NotificationRepositoryInterface,
	messenger MessengerInterface,
	matcher notify.AssetTypeMatcher,
	clock schedule.Clock,
	validator *validator.Validate,
	fallbackToken string,
) *NotificationService {
	if matcher == nil {
		matcher = notify.ItalianPluralMatcher{}
	}
	return &NotificationService{
		repo:          repo,
		messenger:     messenger,
		matcher:       matcher,
		clock:         clock,
		validator:     validator,
		fallbackToken: strings.TrimSpace(fallbackToken),
	}
}

// Ensure NotificationService implements NotificationServiceInterface
var _ NotificationServiceInterface = (*NotificationService)(nil)

// RecipientResult is the delivery outcome for one channel
type RecipientResult struct {
	ChannelID uuid.UUID `json:"channel_id"`
	Name      string    `json:"name"`
	ChatID    string    `json:"chat_id"`
	Delivered bool      `json:"delivered"`
	Error     string    `json:"error,omitempty"`
}

// FanOutResult summarizes a fan-out
type FanOutResult struct {
	Delivered  int               `json:"delivered"`
	Failed     int               `json:"failed"`
	Filtered   int               `json:"filtered"`
	Skipped    string            `json:"skipped,omitempty"`
	Recipients []RecipientResult `json:"recipients"`
}

// UpdateMessagingSettingsRequest replaces the bot token
type UpdateMessagingSettingsRequest struct {
	BotToken string `json:"bot_token" validate:"required,max=255"`
}

// MessagingSettingsResponse never exposes the full token
type MessagingSettingsResponse struct {
	Configured  bool   `json:"configured"`
	Source      string `json:"source,omitempty"`
	BotUsername string `json:"bot_username,omitempty"`
	TokenHint   string `json:"token_hint,omitempty"`
}

// ChannelRequest creates or replaces a notification channel
type ChannelRequest struct {
	Name            string   `json:"name" validate:"required,max=100"`
	ChatID          string   `json:"chat_id" validate:"required,max=100"`
	Categories      []string `json:"categories" validate:"required,min=1,dive,required"`
	LocationFilter  []string `json:"location_filter,omitempty"`
	AssetTypeFilter []string `json:"asset_type_filter,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// TestMessageRequest sends a test message to one channel or to every active channel
type TestMessageRequest struct {
	ChannelID *uuid.UUID `json:"channel_id,omitempty"`
	Message   string     `json:"message,omitempty" validate:"max=1000"`
}

// FanOut sends msg to every active channel whose filters accept it.
// One failing channel does not prevent delivery to the others.
func (s *NotificationService) FanOut(ctx context.Context, msg notify.Message) *FanOutResult {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"category": msg.Category,
		"asset_id": msg.AssetID,
	})
	result := &FanOutResult{Recipients: []RecipientResult{}}

	token, _, err := s.token()
	if err != nil {
		log.WithError(err).Error("Failed to read messaging settings")
		result.Skipped = "settings unavailable"
		return result
	}
	if token == "" {
		log.Debug("Messaging not configured, skipping fan-out")
		result.Skipped = "messaging not configured"
		return result
	}

	channels, err := s.repo.ListChannels(true)
	if err != nil {
		log.WithError(err).Error("Failed to list notification channels")
		result.Skipped = "channels unavailable"
		return result
	}

	recipients := notify.Recipients(channels, msg.Target(), s.matcher)
	result.Filtered = len(channels) - len(recipients)
	text := notify.Format(msg, s.clock.Now())

	for _, ch := range recipients {
		rr := s.deliver(ctx, token, ch, msg.Category, msg.Title, text)
		if rr.Delivered {
			result.Delivered++
		} else {
			result.Failed++
		}
		result.Recipients = append(result.Recipients, rr)
	}

	log.WithFields(map[string]interface{}{
		"delivered": result.Delivered,
		"failed":    result.Failed,
		"filtered":  result.Filtered,
	}).Info("Alert fan-out finished")
	return result
}

func (s *NotificationService) deliver(ctx context.Context, token string, ch models.NotificationChannel, category models.AlertCategory, title, text string) RecipientResult {
	rr := RecipientResult{ChannelID: ch.ID, Name: ch.Name, ChatID: ch.ChatID}
	channelID := ch.ID
	entry := &models.DeliveryLog{
		ChannelID:     &channelID,
		ChatID:        ch.ChatID,
		AlertCategory: string(category),
		Title:         title,
		Message:       text,
	}

	if err := s.messenger.SendMessage(ctx, token, ch.ChatID, text); err != nil {
		rr.Error = err.Error()
		entry.Error = err.Error()
		logger.WithContext(ctx).WithError(err).WithField("channel", ch.Name).Warn("Failed to deliver alert")
	} else {
		rr.Delivered = true
		entry.Success = true
	}

	if err := s.repo.CreateDeliveryLog(entry); err != nil {
		logger.WithContext(ctx).WithError(err).Error("Failed to write delivery log")
	}
	return rr
}

// token returns the stored token, or the configured fallback
func (s *NotificationService) token() (string, string, error) {
	settings, err := s.repo.GetSettings()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", err
	}
	if settings != nil && strings.TrimSpace(settings.BotToken) != "" {
		return strings.TrimSpace(settings.BotToken), "database", nil
	}
	if s.fallbackToken != "" {
		return s.fallbackToken, "environment", nil
	}
	return "", "", nil
}

// GetSettings reports whether messaging is configured
func (s *NotificationService) GetSettings() (*MessagingSettingsResponse, error) {
	settings, err := s.repo.GetSettings()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get messaging settings: %w", err)
	}
	if settings != nil && settings.BotToken != "" {
		return &MessagingSettingsResponse{
			Configured:  true,
			Source:      "database",
			BotUsername: settings.BotUsername,
			TokenHint:   maskToken(settings.BotToken),
		}, nil
	}
	if s.fallbackToken != "" {
		return &MessagingSettingsResponse{Configured: true, Source: "environment", TokenHint: maskToken(s.fallbackToken)}, nil
	}
	return &MessagingSettingsResponse{Configured: false}, nil
}

// UpdateSettings validates the token against the provider before storing it
func (s *NotificationService) UpdateSettings(ctx context.Context, req *UpdateMessagingSettingsRequest) (*MessagingSettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	token := strings.TrimSpace(req.BotToken)

	bot, err := s.messenger.GetMe(ctx, token)
	if err != nil {
		var apiErr *telegram.APIError
		if errors.As(err, &apiErr) {
			return nil, apperrors.ErrInvalidBotToken
		}
		return nil, fmt.Errorf("failed to verify bot token: %w", err)
	}

	settings := &models.MessagingSettings{BotToken: token, BotUsername: bot.Username, IsActive: true}
	if err := s.repo.SaveSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to save messaging settings: %w", err)
	}

	logger.WithContext(ctx).WithField("bot", bot.Username).Info("Messaging settings updated")
	return &MessagingSettingsResponse{
		Configured:  true,
		Source:      "database",
		BotUsername: bot.Username,
		TokenHint:   maskToken(token),
	}, nil
}

// ListChannels returns every channel, active or not
func (s *NotificationService) ListChannels() ([]models.NotificationChannel, error) {
	channels, err := s.repo.ListChannels(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}

// CreateChannel adds a notification channel
func (s *NotificationService) CreateChannel(req *ChannelRequest) (*models.NotificationChannel, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	ch := &models.NotificationChannel{IsActive: true}
	applyChannelRequest(ch, req)
	if err := s.repo.CreateChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return ch, nil
}

// UpdateChannel replaces the filters of a channel
func (s *NotificationService) UpdateChannel(id uuid.UUID, req *ChannelRequest) (*models.NotificationChannel, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	ch, err := s.repo.GetChannel(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrChannelNotFound, "get channel")
	}
	applyChannelRequest(ch, req)
	if err := s.repo.UpdateChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to update channel: %w", err)
	}
	return ch, nil
}

// DeleteChannel removes a channel
func (s *NotificationService) DeleteChannel(id uuid.UUID) error {
	if err := s.repo.DeleteChannel(id); err != nil {
		return lookupError(err, apperrors.ErrChannelNotFound, "delete channel")
	}
	return nil
}

// SendTest sends a plain test message, bypassing category filters
func (s *NotificationService) SendTest(ctx context.Context, req *TestMessageRequest) (*FanOutResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	token, _, err := s.token()
	if err != nil {
		return nil, fmt.Errorf("failed to read messaging settings: %w", err)
	}
	if token == "" {
		return nil, apperrors.ErrMessagingNotConfigured
	}

	var targets []models.NotificationChannel
	if req.ChannelID != nil {
		ch, err := s.repo.GetChannel(*req.ChannelID)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrChannelNotFound, "get channel")
		}
		targets = append(targets, *ch)
	} else {
		targets, err = s.repo.ListChannels(true)
		if err != nil {
			return nil, fmt.Errorf("failed to list channels: %w", err)
		}
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		text = "✅ <b>GESTMAN</b> test message\n\n📅 " + s.clock.Now().Format("02/01/2006 15:04")
	}

	result := &FanOutResult{Recipients: []RecipientResult{}}
	for _, ch := range targets {
		rr := s.deliver(ctx, token, ch, "test", "Test message", text)
		if rr.Delivered {
			result.Delivered++
		} else {
			result.Failed++
		}
		result.Recipients = append(result.Recipients, rr)
	}
	return result, nil
}

// ListDeliveryLogs returns the latest delivery attempts
func (s *NotificationService) ListDeliveryLogs(limit int) ([]models.DeliveryLog, error) {
	if limit <= 0 || limit > 1000 {
		limit = defaultDeliveryLogLimit
	}
	logs, err := s.repo.ListDeliveryLogs(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery logs: %w", err)
	}
	return logs, nil
}

func applyChannelRequest(ch *models.NotificationChannel, req *ChannelRequest) {
	ch.Name = strings.TrimSpace(req.Name)
	ch.ChatID = strings.TrimSpace(req.ChatID)
	ch.Categories = datatypes.JSONSlice[string](trimAll(req.Categories))
	ch.LocationFilter = datatypes.JSONSlice[string](trimAll(req.LocationFilter))
	ch.AssetTypeFilter = datatypes.JSONSlice[string](trimAll(req.AssetTypeFilter))
	if req.IsActive != nil {
		ch.IsActive = *req.IsActive
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func maskToken(token string) string {
	if len(token) <= 10 {
		return "****"
	}
	return token[:4] + "****" + token[len(token)-4:]
}
