package services

import (
	"testing"
	"time"

	"estatedesk/internal/models"
	"estatedesk/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	t.Run("investment_action_records_investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		investment := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 6, 0))

		svc.Log(user.ID, "REDEEM_INVESTMENT", "investment", investment.ID, "127.0.0.1",
			map[string]any{"investor_id": investor.ID, "value_on_maturity": 1050.0})

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("action = ?", "REDEEM_INVESTMENT").First(&entry).Error)
		if entry.InvestorID == nil || *entry.InvestorID != investor.ID {
			t.Errorf("expected investorId %s, got %v", investor.ID, entry.InvestorID)
		}
		if entry.ResourceID != investment.ID {
			t.Errorf("expected resourceId %s, got %s", investment.ID, entry.ResourceID)
		}
		if entry.Changes == "" {
			t.Error("expected changes to be recorded")
		}
	})

	t.Run("investor_action_uses_resource", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 0)

		svc.Log(user.ID, "UPDATE_INVESTOR", "investor", investor.ID, "127.0.0.1", nil)

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("action = ?", "UPDATE_INVESTOR").First(&entry).Error)
		if entry.InvestorID == nil || *entry.InvestorID != investor.ID {
			t.Errorf("expected investorId %s, got %v", investor.ID, entry.InvestorID)
		}
	})

	t.Run("unowned_property_has_no_investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, 50, 120, nil)

		var owner *string
		svc.Log(user.ID, "CREATE_PROPERTY", "property", property.ID, "127.0.0.1",
			map[string]any{"area": property.Area, "investor_id": owner})

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("action = ?", "CREATE_PROPERTY").First(&entry).Error)
		if entry.InvestorID != nil {
			t.Errorf("expected no investorId, got %s", *entry.InvestorID)
		}
	})

	t.Run("owned_property_pointer_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 0)
		property := testutil.CreateTestProperty(t, db, 50, 120, &investor.ID)

		svc.Log(user.ID, "CREATE_PROPERTY", "property", property.ID, "127.0.0.1",
			map[string]any{"investor_id": property.InvestorID})

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("action = ?", "CREATE_PROPERTY").First(&entry).Error)
		if entry.InvestorID == nil || *entry.InvestorID != investor.ID {
			t.Errorf("expected investorId %s, got %v", investor.ID, entry.InvestorID)
		}
	})

	t.Run("login_has_no_investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)

		svc.Log(user.ID, "LOGIN", "user", user.ID, "127.0.0.1", nil)

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("action = ?", "LOGIN").First(&entry).Error)
		if entry.InvestorID != nil {
			t.Errorf("expected no investorId, got %s", *entry.InvestorID)
		}
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %q", entry.Changes)
		}
	})
}
