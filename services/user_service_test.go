package services

import (
	"errors"
	"testing"

	"hotel-booking-backend/auth"
	"hotel-booking-backend/models"
)

func TestUserRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, token, err := svc.Register("alice", "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("register returned empty token")
	}
	if user.Password == "s3cret" {
		t.Fatal("password stored in plain text")
	}
	if user.LastLogin != nil {
		t.Fatal("fresh user has last_login set")
	}

	if _, _, err := svc.Register("alice", "other@example.com", "pw"); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict for duplicate username, got %v", err)
	}
	if _, _, err := svc.Register("", "x@example.com", "pw"); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}

	logged, token, err := svc.Login("alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.LastLogin == nil {
		t.Fatal("login did not record last_login")
	}
	claims, err := auth.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Sub != user.ID || claims.Role != auth.RoleUser {
		t.Fatalf("claims = %+v, want sub=%d role=%s", claims, user.ID, auth.RoleUser)
	}

	if _, _, err := svc.Login("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login("nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user, _, err := svc.Register("alice", "alice@example.com", "old-pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong", "new-pw"); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation for wrong current password, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "old-pw", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation for empty new password, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "old-pw", "new-pw"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := svc.Login("alice", "old-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("old password still accepted")
	}
	if _, _, err := svc.Login("alice", "new-pw"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestSetAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user, _, err := svc.Register("alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.SetAdmin(auth.Principal{UserID: user.ID}, user.ID, true); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden for non-admin caller, got %v", err)
	}

	promoted, err := svc.SetAdmin(auth.Principal{Admin: true}, user.ID, true)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if !promoted.IsAdmin {
		t.Fatal("user not promoted")
	}

	var row models.User
	if err := db.First(&row, user.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !row.IsAdmin {
		t.Fatal("admin flag not persisted")
	}

	demoted, err := svc.SetAdmin(auth.Principal{Admin: true}, user.ID, false)
	if err != nil {
		t.Fatalf("demote: %v", err)
	}
	if demoted.IsAdmin {
		t.Fatal("user not demoted")
	}

	if _, err := svc.SetAdmin(auth.Principal{Admin: true}, 9999, true); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}
