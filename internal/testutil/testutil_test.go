package testutil_test

import (
	"testing"
	"time"

	"estatedesk/internal/errors"
	"estatedesk/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "investors", "agents", "properties", "maintenance_expenses", "expenses", "investments", "documents", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestInvestor(t, first, 100)

	var count int64
	second.Table("investors").Count(&count)
	if count != 0 {
		t.Errorf("expected an empty second database, got %d investors", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	investor := testutil.CreateTestInvestor(t, db, 5000)
	if investor.Balance != 5000 {
		t.Errorf("expected balance 5000, got %f", investor.Balance)
	}
	if len(investor.Bank) != 1 {
		t.Errorf("expected one bank account, got %d", len(investor.Bank))
	}

	property := testutil.CreateTestProperty(t, db, 50, 120, &investor.ID)
	if property.MaintenanceExpense == nil || property.MaintenanceExpense.Amount != 6000 {
		t.Errorf("expected maintenance expense of 6000, got %+v", property.MaintenanceExpense)
	}

	inv := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))
	if inv.Redeemed {
		t.Error("new investment should not be redeemed")
	}

	expense := testutil.CreateTestExpense(t, db, investor.ID, 300, 100)
	if expense.Remaining() != 200 {
		t.Errorf("expected 200 remaining, got %f", expense.Remaining())
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrInvestorNotFound, "custom message")
	testutil.AssertAppError(t, err, "NOT_FOUND")
	testutil.AssertAppErrorMessage(t, err, "NOT_FOUND", "custom message")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
