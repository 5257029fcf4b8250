package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestTaskTypeEmail_Constant(t *testing.T) {
	if TaskTypeEmail != "email:send" {
		t.Errorf("TaskTypeEmail = %q, expected %q", TaskTypeEmail, "email:send")
	}
}

func TestEmailTask_Structure(t *testing.T) {
	task := EmailTask{
		To:      []string{"player@example.com"},
		Subject: "[SportsMatch] Your verification code",
		Body:    "<html></html>",
	}

	if len(task.To) != 1 || task.To[0] != "player@example.com" {
		t.Errorf("To = %v, expected one recipient", task.To)
	}
	if task.Subject != "[SportsMatch] Your verification code" {
		t.Errorf("Subject = %q", task.Subject)
	}
	if task.Body != "<html></html>" {
		t.Errorf("Body = %q", task.Body)
	}
}

func TestSyncQueue_New(t *testing.T) {
	queue := NewSyncQueue()
	if queue == nil {
		t.Error("NewSyncQueue should not return nil")
	}
}

func TestSyncQueue_IsAsync(t *testing.T) {
	queue := NewSyncQueue()
	if queue.IsAsync() {
		t.Error("SyncQueue.IsAsync() should return false")
	}
}

func TestSyncQueue_Close(t *testing.T) {
	queue := NewSyncQueue()
	err := queue.Close()
	if err != nil {
		t.Errorf("SyncQueue.Close() should return nil, got %v", err)
	}
}

func TestSyncQueue_EnqueueWithoutProcessor(t *testing.T) {
	queue := NewSyncQueue()
	task := &EmailTask{
		To:      []string{"a@example.com"},
		Subject: "s",
	}

	err := queue.Enqueue(task)
	if err != nil {
		t.Errorf("Enqueue without processor should not error, got %v", err)
	}
}

func TestSyncQueue_EnqueueRunsProcessor(t *testing.T) {
	queue := NewSyncQueue()

	var mu sync.Mutex
	var got *EmailTask
	done := make(chan struct{})

	queue.SetProcessor(func(ctx context.Context, task *EmailTask) error {
		mu.Lock()
		got = task
		mu.Unlock()
		close(done)
		return nil
	})

	if err := queue.Enqueue(&EmailTask{Subject: "hello"}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("processor was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	if got == nil || got.Subject != "hello" {
		t.Errorf("processor got %+v, expected subject %q", got, "hello")
	}
}

func TestAsyncQueue_IsAsync(t *testing.T) {
	queue := &AsyncQueue{}
	if !queue.IsAsync() {
		t.Error("AsyncQueue.IsAsync() should return true")
	}
}
