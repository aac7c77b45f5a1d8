package services_test

import (
	"testing"
	"time"

	"dmscreen/models"
	"dmscreen/repository"
	"dmscreen/services"

	"gorm.io/gorm"
)

// newAuthService builds an auth service without a session store; only
// Login, IssueToken and Logout touch Redis.
func newAuthService(db *gorm.DB) *services.AuthService {
	return services.NewAuthService(repository.NewUserRepository(db), nil, "test-secret")
}

func TestRegisterAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("alice", "secret", "Alice@Example.com ")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Name != "alice" {
		t.Errorf("Expected name alice, got %q", user.Name)
	}
	if user.Email == nil || *user.Email != "alice@example.com" {
		t.Errorf("Expected normalized email, got %v", user.Email)
	}
	if string(user.Password) == "secret" {
		t.Error("Expected password to be hashed, got plaintext")
	}

	got, err := svc.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, got.ID)
	}

	_, err = svc.Authenticate("alice", "wrong")
	wantKind(t, err, services.KindValidation)

	_, err = svc.Authenticate("nobody", "secret")
	wantKind(t, err, services.KindValidation)
}

func TestRegisterDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	if _, err := svc.Register("alice", "secret", "alice@example.com"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Register("alice", "other", "")
	wantKind(t, err, services.KindConflict)

	_, err = svc.Register("bob", "other", "alice@example.com")
	wantKind(t, err, services.KindConflict)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("", "secret", "")
	wantKind(t, err, services.KindValidation)

	_, err = svc.Register("alice", "", "")
	wantKind(t, err, services.KindValidation)
}

func TestResetPasswordFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("alice", "old-password", "alice@example.com")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	reset := models.NewEmailReset(user.ID, "reset-code", time.Now())
	if err := db.Create(reset).Error; err != nil {
		t.Fatalf("Failed to create reset: %v", err)
	}

	found, err := svc.FindUserByResetCode("reset-code")
	if err != nil {
		t.Fatalf("FindUserByResetCode failed: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("Expected user %d behind the code, got %d", user.ID, found.ID)
	}

	if err := svc.ResetPassword("reset-code", "new-password"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	if _, err := svc.Authenticate("alice", "new-password"); err != nil {
		t.Fatalf("Expected new password to work: %v", err)
	}
	_, err = svc.Authenticate("alice", "old-password")
	wantKind(t, err, services.KindValidation)

	// The code is single use.
	err = svc.ResetPassword("reset-code", "another-password")
	wantKind(t, err, services.KindNotFound)
}

func TestResetPasswordExpiredCode(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("alice", "secret", "alice@example.com")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	reset := models.NewEmailReset(user.ID, "stale-code", time.Now().Add(-25*time.Hour))
	if err := db.Create(reset).Error; err != nil {
		t.Fatalf("Failed to create reset: %v", err)
	}

	err = svc.ResetPassword("stale-code", "new-password")
	wantKind(t, err, services.KindValidation)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	err := svc.ForgotPassword("nobody@example.com")
	wantKind(t, err, services.KindNotFound)
}
