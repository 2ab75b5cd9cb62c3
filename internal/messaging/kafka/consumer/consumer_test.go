package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	messages  []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.messages) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

type fakeHandler struct {
	handled  []events.LeaveCommentAddedEvent
	notifyFn func(ctx context.Context, ev events.LeaveCommentAddedEvent) error
}

func (f *fakeHandler) NotifyCommentAdded(ctx context.Context, ev events.LeaveCommentAddedEvent) error {
	if f.notifyFn != nil {
		return f.notifyFn(ctx, ev)
	}
	f.handled = append(f.handled, ev)
	return nil
}

func fastRetry(t *testing.T) {
	t.Helper()
	base, maxDelay := retryBaseDelay, retryMaxDelay
	retryBaseDelay, retryMaxDelay = time.Millisecond, 2*time.Millisecond
	t.Cleanup(func() { retryBaseDelay, retryMaxDelay = base, maxDelay })
}

func TestConsumeLeaveCommentAdded(t *testing.T) {
	t.Run("success - handles and commits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			cancel: cancel,
			messages: []kafkago.Message{
				{Offset: 1, Value: []byte(`{"event_type":"leave_request.comment_added","comment_id":8,"leave_request_id":1,"owner_emp_number":2}`)},
			},
		}
		handler := &fakeHandler{}

		ConsumeLeaveCommentAdded(ctx, reader, handler, zap.NewNop())

		if assert.Len(t, handler.handled, 1) {
			assert.Equal(t, int64(8), handler.handled[0].CommentID)
			assert.Equal(t, int64(2), handler.handled[0].OwnerEmpNumber)
		}
		assert.Len(t, reader.committed, 1)
	})

	t.Run("negative - invalid payload is committed and skipped", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{{Offset: 1, Value: []byte("not json")}}}
		handler := &fakeHandler{}

		ConsumeLeaveCommentAdded(ctx, reader, handler, zap.NewNop())

		assert.Empty(t, handler.handled)
		assert.Len(t, reader.committed, 1)
	})

	t.Run("success - failed message is retried before the next one", func(t *testing.T) {
		fastRetry(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{
			{Offset: 1, Value: []byte(`{"comment_id":8}`)},
			{Offset: 2, Value: []byte(`{"comment_id":9}`)},
		}}
		var seen []int64
		handler := &fakeHandler{notifyFn: func(ctx context.Context, ev events.LeaveCommentAddedEvent) error {
			seen = append(seen, ev.CommentID)
			if len(seen) == 1 {
				return errors.New("smtp down")
			}
			return nil
		}}

		ConsumeLeaveCommentAdded(ctx, reader, handler, zap.NewNop())

		assert.Equal(t, []int64{8, 8, 9}, seen)
		if assert.Len(t, reader.committed, 2) {
			assert.Equal(t, int64(1), reader.committed[0].Offset)
			assert.Equal(t, int64(2), reader.committed[1].Offset)
		}
	})

	t.Run("negative - shutdown during retries leaves message uncommitted", func(t *testing.T) {
		fastRetry(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{
			{Offset: 1, Value: []byte(`{"comment_id":8}`)},
			{Offset: 2, Value: []byte(`{"comment_id":9}`)},
		}}
		calls := 0
		handler := &fakeHandler{notifyFn: func(ctx context.Context, ev events.LeaveCommentAddedEvent) error {
			calls++
			if calls == 3 {
				cancel()
			}
			return errors.New("smtp down")
		}}

		ConsumeLeaveCommentAdded(ctx, reader, handler, zap.NewNop())

		assert.Equal(t, 3, calls)
		assert.Empty(t, reader.committed)
		assert.Len(t, reader.messages, 1)
	})

	t.Run("negative - other event type", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{{Offset: 1, Value: []byte(`{"event_type":"employee_created"}`)}}}
		handler := &fakeHandler{}

		ConsumeLeaveCommentAdded(ctx, reader, handler, zap.NewNop())

		assert.Empty(t, handler.handled)
		assert.Len(t, reader.committed, 1)
	})
}
