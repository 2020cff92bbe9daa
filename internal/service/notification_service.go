package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/repository"
	"go.uber.org/zap"
)

// NotificationService persists run summaries so the presentation layer can
// show what the background jobs did. Recording is best-effort: a failed
// notification write never fails the planning run it reports on.
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	logger           *zap.Logger
}

func NewNotificationService(notificationRepo *repository.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Record persists a planning notification.
func (s *NotificationService) Record(ctx context.Context, typ domain.NotificationType, title, message string) {
	notification := &domain.Notification{
		Type:    typ,
		Title:   title,
		Message: message,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Warn("failed to record planning notification",
			zap.String("type", string(typ)),
			zap.Error(err),
		)
	}
}

func (s *NotificationService) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.notificationRepo.List(ctx, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, id)
}
