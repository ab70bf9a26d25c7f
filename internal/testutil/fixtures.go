package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"estatedesk/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of users created by CreateTestUser.
const TestPassword = "Str0ng!Pass"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestInvestor creates an investor with the given balance.
func CreateTestInvestor(t *testing.T, db *gorm.DB, balance float64) *models.Investor {
	t.Helper()

	n := nextID()
	investor := &models.Investor{
		Name:    fmt.Sprintf("Investor %d", n),
		Email:   fmt.Sprintf("investor%d@test.com", n),
		Code:    int(n),
		Phone:   "0123456789",
		Address: "1 Test Street",
		Bank:    []models.BankAccount{{BankName: "Test Bank", AccountNumber: fmt.Sprintf("ACC%d", n)}},
		Balance: balance,
	}
	if err := db.Create(investor).Error; err != nil {
		t.Fatalf("failed to create test investor: %v", err)
	}
	return investor
}

// CreateTestAgent creates an agent for the given investor.
func CreateTestAgent(t *testing.T, db *gorm.DB, investorID string) *models.Agent {
	t.Helper()

	agent := &models.Agent{
		Name:       fmt.Sprintf("Agent %d", nextID()),
		Phone:      "0123456789",
		Address:    "2 Test Street",
		InvestorID: investorID,
	}
	if err := db.Create(agent).Error; err != nil {
		t.Fatalf("failed to create test agent: %v", err)
	}
	return agent
}

// CreateTestProperty creates a property with its maintenance expense, as the
// property service would, charging rate per unit of area.
func CreateTestProperty(t *testing.T, db *gorm.DB, area, rate float64, investorID *string) *models.Property {
	t.Helper()

	property := &models.Property{
		Name:       fmt.Sprintf("Unit %d", nextID()),
		Floor:      3,
		Area:       area,
		Direction:  "north",
		Elevators:  1,
		InvestorID: investorID,
		MaintenanceExpense: &models.MaintenanceExpense{
			Amount:     area * rate,
			InvestorID: investorID,
		},
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}
	return property
}

// CreateTestExpense creates a custom expense billed to the investor.
func CreateTestExpense(t *testing.T, db *gorm.DB, investorID string, amount, paid float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Name:          fmt.Sprintf("Expense %d", nextID()),
		Amount:        amount,
		Paid:          paid,
		ForInvestorID: investorID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestInvestment creates an active investment of amount at a 10% rate
// maturing at redemption.
func CreateTestInvestment(t *testing.T, db *gorm.DB, investorID, createdByID string, amount float64, redemption time.Time) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		Amount:          amount,
		InterestRate:    0.1,
		ValueOnMaturity: amount * 1.05,
		RedemptionDate:  redemption,
		Type:            models.InvestmentTypeBonds,
		Bank:            models.BankAccount{BankName: "Test Bank", AccountNumber: "ACC1"},
		InvestorID:      investorID,
		CreatedByID:     createdByID,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
