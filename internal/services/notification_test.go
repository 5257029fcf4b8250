package services

import (
	"net/http"
	"testing"

	"github.com/sportsmatch/backend/internal/models"
)

func TestNotificationInbox(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	gameSvc := newGameService(db)
	alice := createUser(t, db, "alice")
	game := createGame(t, gameSvc, alice)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if err := svc.Notify(alice.ID, game.ID, models.NotificationCategoryGame, models.NotificationTypeJoin, title); err != nil {
			t.Fatalf("notify failed: %v", err)
		}
	}

	notifications, appErr := svc.List(alice.ID, false)
	if appErr != nil {
		t.Fatalf("list failed: %v", appErr)
	}
	if len(notifications) != 3 {
		t.Fatalf("got %d notifications, expected 3", len(notifications))
	}
	if notifications[0].Game == nil || notifications[0].Game.ID != game.ID {
		t.Error("notifications should preload the game")
	}

	count, _ := svc.UnreadCount(alice.ID)
	if count != 3 {
		t.Errorf("unread = %d, expected 3", count)
	}

	if appErr := svc.MarkRead(alice.ID, notifications[0].ID); appErr != nil {
		t.Fatalf("mark read failed: %v", appErr)
	}

	unread, _ := svc.List(alice.ID, true)
	if len(unread) != 2 {
		t.Errorf("unread list = %d entries, expected 2", len(unread))
	}

	if appErr := svc.MarkAllRead(alice.ID); appErr != nil {
		t.Fatalf("mark all failed: %v", appErr)
	}
	count, _ = svc.UnreadCount(alice.ID)
	if count != 0 {
		t.Errorf("unread after mark-all = %d, expected 0", count)
	}
}

func TestNotificationMarkRead_OwnershipEnforced(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	gameSvc := newGameService(db)
	alice := createUser(t, db, "alice")
	eve := createUser(t, db, "eve")
	game := createGame(t, gameSvc, alice)

	if err := svc.Notify(alice.ID, game.ID, models.NotificationCategoryGame, models.NotificationTypeJoin, "hi"); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	notifications, _ := svc.List(alice.ID, false)

	if appErr := svc.MarkRead(eve.ID, notifications[0].ID); appErr == nil || appErr.HTTPStatus != http.StatusForbidden {
		t.Fatalf("foreign mark: expected 403, got %v", appErr)
	}

	if appErr := svc.MarkRead(alice.ID, 9999); appErr == nil || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %v", appErr)
	}
}
