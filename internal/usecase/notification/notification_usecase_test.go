package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/testutil"
)

func TestEmitFillsEnvelope(t *testing.T) {
	repo := testutil.NewNotificationRepo()
	e := NewEmitter(repo)
	at := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return at }

	e.Emit(context.Background(), &domain.Notification{
		RecipientID:    "u1",
		Type:           domain.NotificationFollow,
		SenderID:       "u2",
		SenderUsername: "mert",
		Message:        "mert seni takip etmeye başladı!",
	})

	stored, err := e.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("notifications = %d, want 1", len(stored))
	}
	n := stored[0]
	if n.ID == "" {
		t.Error("Emit() did not assign an id")
	}
	if n.Read {
		t.Error("new notification must start unread")
	}
	if !n.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", n.CreatedAt, at)
	}
}

func TestEmitSwallowsFailures(t *testing.T) {
	repo := testutil.NewNotificationRepo()
	repo.FailFor["u1"] = errors.New("write failed")
	e := NewEmitter(repo)

	// No panic, no propagation: emission is best-effort.
	e.Emit(context.Background(), &domain.Notification{RecipientID: "u1", Type: domain.NotificationLike})
}

func TestBroadcastContinuesPastFailures(t *testing.T) {
	repo := testutil.NewNotificationRepo()
	repo.FailFor["u2"] = errors.New("write failed")
	e := NewEmitter(repo)

	e.Broadcast(context.Background(), []string{"u1", "u2", "u3"}, domain.Notification{
		Type:    domain.NotificationGoodDeed,
		Message: "askıda yemek var",
	})

	for _, id := range []string{"u1", "u3"} {
		got, _ := e.List(context.Background(), id)
		if len(got) != 1 {
			t.Errorf("recipient %s got %d notifications, want 1", id, len(got))
		}
	}
	if got, _ := e.List(context.Background(), "u2"); len(got) != 0 {
		t.Errorf("failed recipient stored %d notifications, want 0", len(got))
	}
}

func TestMarkRead(t *testing.T) {
	repo := testutil.NewNotificationRepo()
	e := NewEmitter(repo)

	e.Emit(context.Background(), &domain.Notification{RecipientID: "u1", Type: domain.NotificationStamp})
	stored, _ := e.List(context.Background(), "u1")

	if err := e.MarkRead(context.Background(), "u1", stored[0].ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	stored, _ = e.List(context.Background(), "u1")
	if !stored[0].Read {
		t.Error("notification still unread after MarkRead")
	}

	if err := e.MarkRead(context.Background(), "u1", "ghost"); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("MarkRead(ghost) error = %v, want ErrNotificationNotFound", err)
	}
}

func TestMarkReadScopedToRecipient(t *testing.T) {
	repo := testutil.NewNotificationRepo()
	e := NewEmitter(repo)

	e.Emit(context.Background(), &domain.Notification{RecipientID: "u1", Type: domain.NotificationStamp})
	stored, _ := e.List(context.Background(), "u1")

	// Another user cannot flip it, even with the right id.
	if err := e.MarkRead(context.Background(), "u2", stored[0].ID); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("MarkRead by non-recipient error = %v, want ErrNotificationNotFound", err)
	}
	stored, _ = e.List(context.Background(), "u1")
	if stored[0].Read {
		t.Error("non-recipient marked the notification read")
	}

	if err := e.MarkRead(context.Background(), "u1", stored[0].ID); err != nil {
		t.Fatalf("MarkRead() by recipient error = %v", err)
	}
}
