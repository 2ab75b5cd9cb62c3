package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type LeaveCommentAddedHandler interface {
	NotifyCommentAdded(ctx context.Context, ev events.LeaveCommentAddedEvent) error
}

// Handler failures retry the same message with exponential backoff. Later
// messages are not fetched meanwhile, so a commit never skips a failed one.
var (
	retryBaseDelay = time.Second
	retryMaxDelay  = time.Minute
)

// ConsumeLeaveCommentAdded runs until ctx is cancelled. Undecodable messages are
// committed and dropped. A message whose handler keeps failing stays uncommitted
// and is retried until it succeeds or ctx ends.
func ConsumeLeaveCommentAdded(
	ctx context.Context,
	reader MessageReader,
	handler LeaveCommentAddedHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_comment")
	log.Info("leave comment consumer started")

	for ctx.Err() == nil {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave comment consumer stopped")
				return
			}
			log.Error("fetch leave comment message failed", zap.Error(err))
			continue
		}

		handleLeaveCommentMessage(ctx, reader, handler, msg, log)
	}
	log.Info("leave comment consumer stopped")
}

func handleLeaveCommentMessage(
	ctx context.Context,
	reader MessageReader,
	handler LeaveCommentAddedHandler,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.LeaveCommentAddedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave_request.comment_added event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if event.EventType != "" && event.EventType != events.LeaveCommentAddedEventType {
		log.Warn("unexpected event type, skipping", zap.String("event_type", event.EventType))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := notifyWithRetry(ctx, handler, event, log); err != nil {
		log.Warn("leave comment notification abandoned on shutdown",
			zap.Int64("comment_id", event.CommentID),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit leave comment message failed", zap.Error(err))
		return
	}

	log.Info("leave comment notification handled",
		zap.Int64("comment_id", event.CommentID),
		zap.Int64("leave_request_id", event.LeaveRequestID),
	)
}

func notifyWithRetry(
	ctx context.Context,
	handler LeaveCommentAddedHandler,
	event events.LeaveCommentAddedEvent,
	log *zap.Logger,
) error {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		err := handler.NotifyCommentAdded(ctx, event)
		if err == nil {
			return nil
		}
		log.Error("notify leave comment failed",
			zap.Int64("comment_id", event.CommentID),
			zap.Int64("leave_request_id", event.LeaveRequestID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, retryMaxDelay)
	}
}
