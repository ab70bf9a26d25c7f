package services

import (
	"testing"

	"estatedesk/internal/testutil"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.Register(RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "Sup3r$ecret"})
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %s", user.Email)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Sup3r$ecret")); err != nil {
			t.Error("expected stored password to be a bcrypt hash of the input")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register(RegisterInput{Name: "Dup", Email: "dup@example.com", Password: "Sup3r$ecret"})
		testutil.AssertNoError(t, err)

		_, err = svc.Register(RegisterInput{Name: "Dup", Email: "DUP@example.com", Password: "An0ther$ecret"})
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "A user with this email already exists")
	})

	t.Run("weak_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register(RegisterInput{Name: "Weak", Email: "weak@example.com", Password: "password"})
		testutil.AssertAppError(t, err, "BAD_REQUEST")
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register(RegisterInput{Email: "noname@example.com", Password: "Sup3r$ecret"})
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Invalid data: name: is required")
	})

	t.Run("email_normalized_to_lowercase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.Register(RegisterInput{Name: "Alice", Email: " Alice@EXAMPLE.COM ", Password: "Sup3r$ecret"})
		testutil.AssertNoError(t, err)

		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUserWithEmail(t, db, "login@example.com")
		user, err := svc.Login(LoginInput{Email: "LOGIN@example.com", Password: testutil.TestPassword})
		testutil.AssertNoError(t, err)

		if user.ID != created.ID {
			t.Errorf("expected user ID %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("unknown_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Login(LoginInput{Email: "ghost@example.com", Password: testutil.TestPassword})
		testutil.AssertAppErrorMessage(t, err, "UNAUTHORIZED", "user with email 'ghost@example.com' does not exist")
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		testutil.CreateTestUserWithEmail(t, db, "wrong@example.com")
		_, err := svc.Login(LoginInput{Email: "wrong@example.com", Password: "Not-the-0ne"})
		testutil.AssertAppErrorMessage(t, err, "UNAUTHORIZED", "Invalid credentials")
	})

	t.Run("invalid_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Login(LoginInput{Email: "not-an-email", Password: "x"})
		testutil.AssertAppError(t, err, "BAD_REQUEST")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUserWithEmail(t, db, "found@example.com")
		user, err := svc.GetUserByEmail("Found@example.com")
		testutil.AssertNoError(t, err)

		if user.ID != created.ID {
			t.Errorf("expected user ID %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("nonexistent@example.com")
		testutil.AssertAppErrorMessage(t, err, "NOT_FOUND", "User not found")
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		user, err := svc.GetUserByID(created.ID)
		testutil.AssertNoError(t, err)

		if user.Email != created.Email {
			t.Errorf("expected email %s, got %s", created.Email, user.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByID("0191e1a2-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}
