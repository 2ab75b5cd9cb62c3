package app

import (
	"context"
	"fmt"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/employee"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/events"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/messaging/kafka/consumer"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/notification"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const leaveCommentNotifierGroup = "orangehrm-leave-comment-notifier"

// RunConsumer mails leave request owners about new comments until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer closeDB(gormDB)

	employeeRepo := employee.NewRepository(gormDB)
	notifier := notification.NewNotifier(cfg.SMTP, logger)
	handler := notification.NewLeaveCommentNotifier(employeeRepo, notifier, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.LeaveCommentAddedTopic,
		GroupID:        leaveCommentNotifierGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeLeaveCommentAdded(ctx, reader, handler, logger)

	log.Info("consumer shutting down")
	return nil
}
