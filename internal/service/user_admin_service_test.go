package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"formhub/internal/dto"
	"formhub/internal/model"
	"formhub/internal/repository"
)

func TestApplyActionTogglesFlags(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserAdminService(repository.NewUserRepository(db))
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	ids := []uuid.UUID{alice.ID, bob.ID}

	steps := []struct {
		action  dto.UserAction
		field   string
		blocked bool
		admin   bool
	}{
		{dto.UserActionBlock, "is_blocked", true, false},
		{dto.UserActionMakeAdmin, "is_admin", true, true},
		{dto.UserActionUnblock, "is_blocked", false, true},
		{dto.UserActionRemoveAdmin, "is_admin", false, false},
	}
	for _, step := range steps {
		if err := svc.ApplyAction(dto.UserActionRequest{Action: step.action, UserIDs: ids}); err != nil {
			t.Fatalf("%s failed: %v", step.action, err)
		}
		var users []model.User
		if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
			t.Fatalf("reloading users: %v", err)
		}
		for _, u := range users {
			if u.IsBlocked != step.blocked || u.IsAdmin != step.admin {
				t.Errorf("after %s: user %s blocked=%v admin=%v", step.action, u.Email, u.IsBlocked, u.IsAdmin)
			}
		}
	}
}

func TestApplyActionRejectsUnknownAction(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserAdminService(repository.NewUserRepository(db))
	user := createTestUser(t, db, "alice@example.com")

	err := svc.ApplyAction(dto.UserActionRequest{Action: "promote_to_root", UserIDs: []uuid.UUID{user.ID}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteUsersRemovesRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserAdminService(repository.NewUserRepository(db))
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	if err := svc.DeleteUsers(dto.UserDeleteRequest{UserIDs: []uuid.UUID{alice.ID}}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var remaining []model.User
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("listing users: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != bob.ID {
		t.Errorf("expected only bob to remain, got %+v", remaining)
	}
}
