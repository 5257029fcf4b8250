package services

import (
	"net/http"
	"testing"
)

func TestProfileLifecycle(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)
	user := createUser(t, db, "alice")

	// Fresh accounts have no profile
	exists, appErr := svc.Check(user.ID)
	if appErr != nil {
		t.Fatalf("check failed: %v", appErr)
	}
	if exists {
		t.Error("fresh account should have no profile")
	}

	view, appErr := svc.Create(user.ID, &CreateProfileRequest{
		Age:            25,
		SportInterests: map[string]int{"Soccer": 3, "Tennis": 1},
	})
	if appErr != nil {
		t.Fatalf("create failed: %v", appErr)
	}
	if view.Age == nil || *view.Age != 25 {
		t.Errorf("age = %v, expected 25", view.Age)
	}
	if view.SportInterests["Soccer"] != 3 {
		t.Errorf("interests = %v, expected Soccer:3", view.SportInterests)
	}

	exists, _ = svc.Check(user.ID)
	if !exists {
		t.Error("profile should exist after create")
	}

	// Create is one-shot
	_, appErr = svc.Create(user.ID, &CreateProfileRequest{Age: 30})
	if appErr == nil || appErr.HTTPStatus != http.StatusConflict {
		t.Fatalf("second create: expected 409, got %v", appErr)
	}

	// Partial update leaves other fields alone
	newAge := 26
	view, appErr = svc.Update(user.ID, &UpdateProfileRequest{Age: &newAge})
	if appErr != nil {
		t.Fatalf("update failed: %v", appErr)
	}
	if view.Age == nil || *view.Age != 26 {
		t.Errorf("age = %v, expected 26", view.Age)
	}
	if view.SportInterests["Soccer"] != 3 {
		t.Error("interests should survive an age-only update")
	}
}

func TestProfile_InterestValidation(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)
	user := createUser(t, db, "alice")

	tests := []struct {
		name      string
		interests map[string]int
	}{
		{"unknown sport", map[string]int{"Chess": 2}},
		{"level too low", map[string]int{"Soccer": 0}},
		{"level too high", map[string]int{"Soccer": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Create(user.ID, &CreateProfileRequest{
				Age:            25,
				SportInterests: tt.interests,
			})
			if appErr == nil || appErr.HTTPStatus != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", appErr)
			}
		})
	}
}

func TestProfile_UnknownUser(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)

	_, appErr := svc.Get(9999)
	if appErr == nil || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", appErr)
	}
}
