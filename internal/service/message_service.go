package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/liceo-connect/liceo-api/internal/dto"
	"github.com/liceo-connect/liceo-api/internal/models"
)

const msgMessageSent = "Mensaje enviado"

type messageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	ListForUser(ctx context.Context, userID int64) ([]models.Message, error)
}

// MessageService delivers internal messages between users.
type MessageService struct {
	repo      messageRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMessageService constructs the service. cache and metrics may be nil.
func NewMessageService(repo messageRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &MessageService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger, now: time.Now}
}

// Send stores a message stamped with the server time. Sender and receiver
// need not exist.
func (s *MessageService) Send(ctx context.Context, req dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "message")
	}

	msg := &models.Message{
		SenderID:   *req.SenderID,
		ReceiverID: *req.ReceiverID,
		Content:    *req.Content,
		SentAt:     s.now().Format(models.TimestampLayout),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, internalError(err, "failed to send message")
	}

	s.cache.Invalidate(ctx, messagesKey(msg.SenderID), messagesKey(msg.ReceiverID))
	s.metrics.RecordCreated("mensaje")
	return &dto.MessageResponse{Message: msgMessageSent}, nil
}

// List returns messages sent or received by userID, oldest first.
func (s *MessageService) List(ctx context.Context, userID int64) ([]dto.MessageItem, error) {
	key := messagesKey(userID)
	var cached []dto.MessageItem
	slot, hit := s.cache.Get(ctx, key, &cached)
	if hit {
		return cached, nil
	}

	messages, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, internalError(err, "failed to list messages")
	}

	items := make([]dto.MessageItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.MessageItem{Sender: m.SenderID, Receiver: m.ReceiverID, Content: m.Content, Date: m.SentAt})
	}
	s.cache.Set(ctx, slot, items)
	return items, nil
}
