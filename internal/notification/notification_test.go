package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/employee"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/events"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	sent   []Message
	sendFn func(ctx context.Context, msg Message) error
}

func (f *fakeNotifier) Send(ctx context.Context, msg Message) error {
	if f.sendFn != nil {
		return f.sendFn(ctx, msg)
	}
	f.sent = append(f.sent, msg)
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestLeaveCommentNotifier_NotifyCommentAdded(t *testing.T) {
	db := testdb.OpenSeeded(t)
	repo := employee.NewRepository(db)
	ctx := context.Background()

	base := events.LeaveCommentAddedEvent{
		EventType:      events.LeaveCommentAddedEventType,
		CommentID:      8,
		LeaveRequestID: 1,
		OwnerEmpNumber: testdb.OwnerEmpNumber,
		Comment:        "Approved, enjoy the trip",
		OccurredAt:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("success - supervisor comment emails the owner", func(t *testing.T) {
		fn := &fakeNotifier{}
		n := NewLeaveCommentNotifier(repo, fn, zap.NewNop())

		ev := base
		ev.CreatedByUserID = testdb.SupervisorUserID
		ev.CreatedByEmpNumber = ptr(testdb.SupervisorEmpNumber)

		require.NoError(t, n.NotifyCommentAdded(ctx, ev))
		require.Len(t, fn.sent, 1)
		assert.Equal(t, "ashley@example.com", fn.sent[0].To)
		assert.Equal(t, leaveCommentSubject, fn.sent[0].Subject)
		assert.Contains(t, fn.sent[0].Body, "Renukshan Saputhanthri commented on your leave request #1")
		assert.Contains(t, fn.sent[0].Body, "Approved, enjoy the trip")
	})

	t.Run("success - user without employee", func(t *testing.T) {
		fn := &fakeNotifier{}
		n := NewLeaveCommentNotifier(repo, fn, zap.NewNop())

		ev := base
		ev.CreatedByUserID = testdb.SystemUserID

		require.NoError(t, n.NotifyCommentAdded(ctx, ev))
		require.Len(t, fn.sent, 1)
		assert.Contains(t, fn.sent[0].Body, "An administrator commented")
	})

	t.Run("skip - owner wrote the comment", func(t *testing.T) {
		fn := &fakeNotifier{}
		n := NewLeaveCommentNotifier(repo, fn, zap.NewNop())

		ev := base
		ev.CreatedByUserID = testdb.OwnerUserID
		ev.CreatedByEmpNumber = ptr(testdb.OwnerEmpNumber)

		require.NoError(t, n.NotifyCommentAdded(ctx, ev))
		assert.Empty(t, fn.sent)
	})

	t.Run("skip - owner has no email", func(t *testing.T) {
		fn := &fakeNotifier{}
		n := NewLeaveCommentNotifier(repo, fn, zap.NewNop())

		ev := base
		ev.OwnerEmpNumber = testdb.SupervisorEmpNumber
		ev.CreatedByEmpNumber = ptr(testdb.AdminEmpNumber)

		require.NoError(t, n.NotifyCommentAdded(ctx, ev))
		assert.Empty(t, fn.sent)
	})

	t.Run("negative - notifier error", func(t *testing.T) {
		fn := &fakeNotifier{sendFn: func(ctx context.Context, msg Message) error {
			return errors.New("smtp down")
		}}
		n := NewLeaveCommentNotifier(repo, fn, zap.NewNop())

		ev := base
		ev.CreatedByEmpNumber = ptr(testdb.AdminEmpNumber)

		assert.EqualError(t, n.NotifyCommentAdded(ctx, ev), "smtp down")
	})
}

func TestSMTPNotifier_Send(t *testing.T) {
	cfg := config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "mailer",
		Password: "secret",
		From:     "hr@example.com",
	}

	t.Run("success", func(t *testing.T) {
		n := NewSMTPNotifier(cfg, zap.NewNop())

		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		var gotAuth smtp.Auth
		n.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
			return nil
		}

		err := n.Send(context.Background(), Message{To: "ashley@example.com", Subject: "Hello", Body: "line1\nline2"})

		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.NotNil(t, gotAuth)
		assert.Equal(t, "hr@example.com", gotFrom)
		assert.Equal(t, []string{"ashley@example.com"}, gotTo)
		assert.True(t, strings.HasPrefix(string(gotMsg), "From: hr@example.com\r\nTo: ashley@example.com\r\nSubject: Hello\r\n"))
		assert.True(t, strings.HasSuffix(string(gotMsg), "\r\n\r\nline1\r\nline2"))
	})

	t.Run("negative - transport error", func(t *testing.T) {
		n := NewSMTPNotifier(cfg, zap.NewNop())
		n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		}

		err := n.Send(context.Background(), Message{To: "ashley@example.com"})
		assert.EqualError(t, err, "send email: connection refused")
	})

	t.Run("negative - cancelled context", func(t *testing.T) {
		n := NewSMTPNotifier(cfg, zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, n.Send(ctx, Message{To: "ashley@example.com"}), context.Canceled)
	})
}

func TestNewNotifier(t *testing.T) {
	assert.IsType(t, &LogNotifier{}, NewNotifier(config.SMTPConfig{}, zap.NewNop()))
	assert.IsType(t, &SMTPNotifier{}, NewNotifier(config.SMTPConfig{Host: "h", Port: "25", From: "f@example.com"}, zap.NewNop()))
}
