package services

import (
	"math"
	"testing"
	"time"

	"estatedesk/internal/models"
	"estatedesk/internal/testutil"
)

func validInvestmentInput(investorID string) InvestmentInput {
	return InvestmentInput{
		Type:            models.InvestmentTypeBonds,
		Amount:          1000,
		ValueOnMaturity: 1050,
		InterestRate:    0.1,
		RedemptionDate:  time.Now().AddDate(0, 6, 0),
		Bank:            models.BankAccount{BankName: "Test Bank", AccountNumber: "ACC1"},
		InvestorID:      investorID,
	}
}

func TestCreateInvestment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)

		inv, err := svc.CreateInvestment(user.ID, validInvestmentInput(investor.ID))
		testutil.AssertNoError(t, err)

		if inv.ID == "" {
			t.Fatal("expected non-empty investment ID")
		}
		if inv.Redeemed {
			t.Error("expected new investment to be active")
		}
		if inv.CreatedByID != user.ID {
			t.Errorf("expected createdById %s, got %s", user.ID, inv.CreatedByID)
		}
		if got := float64(inv.ROI); math.Abs(got-5) > 1e-9 {
			t.Errorf("expected ROI 5, got %f", got)
		}
	})

	t.Run("redemption_date_normalized_to_midnight", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)

		input := validInvestmentInput(investor.ID)
		input.RedemptionDate = time.Date(2099, 3, 14, 15, 9, 26, 0, time.Local)

		inv, err := svc.CreateInvestment(user.ID, input)
		testutil.AssertNoError(t, err)

		want := time.Date(2099, 3, 14, 0, 0, 0, 0, time.Local)
		if !inv.RedemptionDate.Equal(want) {
			t.Errorf("expected redemption date %v, got %v", want, inv.RedemptionDate)
		}
	})

	t.Run("redemption_date_truncated_in_server_zone", func(t *testing.T) {
		local := time.Local
		time.Local = time.FixedZone("UTC+3", 3*3600)
		t.Cleanup(func() { time.Local = local })

		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)

		// 22:00 UTC on Jan 1 is already Jan 2 on the server clock.
		input := validInvestmentInput(investor.ID)
		input.RedemptionDate = time.Date(2099, 1, 1, 22, 0, 0, 0, time.UTC)

		inv, err := svc.CreateInvestment(user.ID, input)
		testutil.AssertNoError(t, err)

		want := time.Date(2099, 1, 2, 0, 0, 0, 0, time.Local)
		if !inv.RedemptionDate.Equal(want) {
			t.Errorf("expected redemption date %v, got %v", want, inv.RedemptionDate)
		}
	})

	t.Run("value_on_maturity_above_interest", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)

		input := validInvestmentInput(investor.ID)
		input.ValueOnMaturity = 1200

		_, err := svc.CreateInvestment(user.ID, input)
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Value on maturity cannot be more than 1100")
	})

	t.Run("value_on_maturity_below_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)

		input := validInvestmentInput(investor.ID)
		input.ValueOnMaturity = 999

		_, err := svc.CreateInvestment(user.ID, input)
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Value on maturity cannot be less than amount")
	})

	t.Run("insufficient_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 1500)
		testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))

		_, err := svc.CreateInvestment(user.ID, validInvestmentInput(investor.ID))
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Investor does not have enough balance")
	})

	t.Run("redeemed_investments_free_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 1500)
		old := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))
		db.Model(old).Update("redeemed", true)

		_, err := svc.CreateInvestment(user.ID, validInvestmentInput(investor.ID))
		testutil.AssertNoError(t, err)
	})

	t.Run("investor_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateInvestment(user.ID, validInvestmentInput("0191e1a2-0000-7000-8000-000000000000"))
		testutil.AssertAppErrorMessage(t, err, "NOT_FOUND", "Investor not found")
	})

	t.Run("redemption_date_in_past", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)

		input := validInvestmentInput(investor.ID)
		input.RedemptionDate = time.Now().AddDate(0, 0, -1)

		_, err := svc.CreateInvestment(user.ID, input)
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Invalid data: redemptionDate: must be a date in the future")
	})

	t.Run("missing_creator", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		investor := testutil.CreateTestInvestor(t, db, 5000)

		_, err := svc.CreateInvestment("", validInvestmentInput(investor.ID))
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})
}

func TestGetAllInvestments(t *testing.T) {
	t.Run("matured_investments_are_redeemed_on_read", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		matured := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 0, -2))
		testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))

		investments, err := svc.GetAllInvestments(InvestmentFilter{})
		testutil.AssertNoError(t, err)

		if len(investments) != 2 {
			t.Fatalf("expected 2 investments, got %d", len(investments))
		}
		for _, inv := range investments {
			if inv.ID == matured.ID && !inv.Redeemed {
				t.Error("expected matured investment to be returned as redeemed")
			}
			if inv.ID != matured.ID && inv.Redeemed {
				t.Error("expected future investment to stay active")
			}
		}

		var stored models.Investment
		db.First(&stored, "id = ?", matured.ID)
		if !stored.Redeemed {
			t.Error("expected redemption to be persisted")
		}
	})

	t.Run("matures_at_midnight", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)

		today := time.Date(2030, 6, 1, 0, 0, 0, 0, time.Local)
		testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, today)
		svc := &investmentService{db: db, now: func() time.Time { return today.Add(8 * time.Hour) }}

		investments, err := svc.GetAllInvestments(InvestmentFilter{})
		testutil.AssertNoError(t, err)

		if len(investments) != 1 || !investments[0].Redeemed {
			t.Error("expected investment due today to be redeemed")
		}
	})

	t.Run("filters_by_investor_and_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		first := testutil.CreateTestInvestor(t, db, 5000)
		second := testutil.CreateTestInvestor(t, db, 5000)
		testutil.CreateTestInvestment(t, db, first.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))
		testutil.CreateTestInvestment(t, db, second.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))

		investments, err := svc.GetAllInvestments(InvestmentFilter{InvestorID: first.ID, WithInvestor: true})
		testutil.AssertNoError(t, err)
		if len(investments) != 1 {
			t.Fatalf("expected 1 investment, got %d", len(investments))
		}
		if investments[0].Investor == nil || investments[0].Investor.ID != first.ID {
			t.Error("expected investor to be preloaded")
		}

		investments, err = svc.GetAllInvestments(InvestmentFilter{Type: models.InvestmentTypeCertificates})
		testutil.AssertNoError(t, err)
		if len(investments) != 0 {
			t.Errorf("expected no certificates, got %d", len(investments))
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		investments, err := svc.GetAllInvestments(InvestmentFilter{})
		testutil.AssertNoError(t, err)
		if investments == nil || len(investments) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", investments)
		}
	})
}

func TestGetInvestmentByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))

		inv, err := svc.GetInvestmentByID(created.ID)
		testutil.AssertNoError(t, err)

		if inv.Investor == nil {
			t.Error("expected investor to be preloaded")
		}
		if got := float64(inv.ROI); math.Abs(got-5) > 1e-9 {
			t.Errorf("expected ROI 5, got %f", got)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		_, err := svc.GetInvestmentByID("0191e1a2-0000-7000-8000-000000000000")
		testutil.AssertAppErrorMessage(t, err, "NOT_FOUND", "Investment not found")
	})

	t.Run("invalid_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		_, err := svc.GetInvestmentByID("abc")
		testutil.AssertAppError(t, err, "BAD_REQUEST")
	})
}

func TestUpdateInvestment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 1500)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))

		// the investment being replaced does not count against the balance
		input := validInvestmentInput(investor.ID)
		input.Amount = 1400
		input.ValueOnMaturity = 1500
		inv, err := svc.UpdateInvestment(created.ID, input)
		testutil.AssertNoError(t, err)

		if inv.Amount != 1400 {
			t.Errorf("expected amount 1400, got %f", inv.Amount)
		}
	})

	t.Run("amount_beyond_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 1500)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))

		input := validInvestmentInput(investor.ID)
		input.Amount = 1600
		input.ValueOnMaturity = 1700
		_, err := svc.UpdateInvestment(created.ID, input)
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Investor does not have enough balance")
	})

	t.Run("redeemed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))
		db.Model(created).Update("redeemed", true)

		_, err := svc.UpdateInvestment(created.ID, validInvestmentInput(investor.ID))
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Cannot update a redeemed investment")
	})

	t.Run("bounds_checked", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))

		input := validInvestmentInput(investor.ID)
		input.ValueOnMaturity = 1200
		_, err := svc.UpdateInvestment(created.ID, input)
		testutil.AssertAppError(t, err, "BAD_REQUEST")
	})
}

func TestEarlyRedeemInvestment(t *testing.T) {
	value := func(f float64) RedeemInput { return RedeemInput{ValueOnMaturity: &f} }

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))

		inv, err := svc.EarlyRedeemInvestment(created.ID, value(1020))
		testutil.AssertNoError(t, err)

		if !inv.Redeemed {
			t.Error("expected investment to be redeemed")
		}
		if inv.ValueOnMaturity != 1020 {
			t.Errorf("expected value on maturity 1020, got %f", inv.ValueOnMaturity)
		}
		if inv.RedemptionDate.After(time.Now()) {
			t.Errorf("expected redemption date to be now, got %v", inv.RedemptionDate)
		}
	})

	t.Run("already_redeemed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))

		_, err := svc.EarlyRedeemInvestment(created.ID, value(1000))
		testutil.AssertNoError(t, err)

		_, err = svc.EarlyRedeemInvestment(created.ID, value(1000))
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Investment is already redeemed")
	})

	t.Run("value_out_of_bounds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))

		_, err := svc.EarlyRedeemInvestment(created.ID, value(900))
		testutil.AssertAppError(t, err, "BAD_REQUEST")

		_, err = svc.EarlyRedeemInvestment(created.ID, value(1101))
		testutil.AssertAppError(t, err, "BAD_REQUEST")
	})

	t.Run("missing_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		_, err := svc.EarlyRedeemInvestment("0191e1a2-0000-7000-8000-000000000000", RedeemInput{})
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Invalid data: valueOnMaturity: is required")
	})
}

func TestDeleteInvestment(t *testing.T) {
	t.Run("soft_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))

		testutil.AssertNoError(t, svc.DeleteInvestment(created.ID, false))

		_, err := svc.GetInvestmentByID(created.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")

		var count int64
		db.Unscoped().Model(&models.Investment{}).Where("id = ?", created.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected soft-deleted row to remain, got %d rows", count)
		}
	})

	t.Run("hard_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))

		testutil.AssertNoError(t, svc.DeleteInvestment(created.ID, true))

		var count int64
		db.Unscoped().Model(&models.Investment{}).Where("id = ?", created.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected row to be removed, got %d rows", count)
		}
	})

	t.Run("redeemed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		created := testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))
		db.Model(created).Update("redeemed", true)

		err := svc.DeleteInvestment(created.ID, false)
		testutil.AssertAppErrorMessage(t, err, "BAD_REQUEST", "Cannot delete a redeemed investment")
	})
}

func TestAggregateInvestments(t *testing.T) {
	t.Run("no_investments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		testutil.CreateTestInvestor(t, db, 2500)

		agg, err := svc.AggregateInvestments(AggregateFilter{})
		testutil.AssertNoError(t, err)

		if agg.TotalInvestorsBalance != 2500 {
			t.Errorf("expected total balance 2500, got %f", agg.TotalInvestorsBalance)
		}
		if agg.TotalProfit != 0 {
			t.Errorf("expected zero profit, got %f", agg.TotalProfit)
		}
		if !math.IsNaN(float64(agg.AvgROI)) {
			t.Errorf("expected NaN avgROI for zero amount, got %f", agg.AvgROI)
		}
	})

	t.Run("totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))
		testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 2000, time.Now().AddDate(1, 0, 0))

		agg, err := svc.AggregateInvestments(AggregateFilter{InvestorID: investor.ID})
		testutil.AssertNoError(t, err)

		if agg.TotalAmount != 3000 {
			t.Errorf("expected total amount 3000, got %f", agg.TotalAmount)
		}
		if math.Abs(agg.TotalProfit-150) > 1e-6 {
			t.Errorf("expected profit 150, got %f", agg.TotalProfit)
		}
		if math.Abs(agg.AvgInterestRate-10) > 1e-6 {
			t.Errorf("expected average rate 10, got %f", agg.AvgInterestRate)
		}
		if math.Abs(float64(agg.AvgROI)-5) > 1e-6 {
			t.Errorf("expected avgROI 5, got %f", agg.AvgROI)
		}
	})

	t.Run("deleted_investors_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investor := testutil.CreateTestInvestor(t, db, 5000)
		testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(1, 0, 0))
		db.Delete(investor)

		agg, err := svc.AggregateInvestments(AggregateFilter{})
		testutil.AssertNoError(t, err)

		if agg.TotalInvestorsBalance != 0 || agg.TotalAmount != 0 {
			t.Errorf("expected deleted investor to be excluded, got %+v", agg)
		}
	})
}

func TestSweepMaturedInvestments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInvestmentService(db)
	user := testutil.CreateTestUser(t, db)
	investor := testutil.CreateTestInvestor(t, db, 5000)
	testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 0, -3))
	testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 0, -1))
	testutil.CreateTestInvestment(t, db, investor.ID, user.ID, 1000, time.Now().AddDate(0, 1, 0))

	n, err := svc.SweepMaturedInvestments()
	testutil.AssertNoError(t, err)
	if n != 2 {
		t.Errorf("expected 2 redeemed investments, got %d", n)
	}

	n, err = svc.SweepMaturedInvestments()
	testutil.AssertNoError(t, err)
	if n != 0 {
		t.Errorf("expected second sweep to be a no-op, got %d", n)
	}
}
