package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/models"
	"estatedesk/internal/softdelete"
	"estatedesk/internal/uuid"
	"estatedesk/internal/validator"
)

// expenseService handles maintenance and custom expenses.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// validatePaidAmount checks that a payment of inc fits in what is still owed.
func validatePaidAmount(amount, alreadyPaid, inc float64) error {
	if inc <= 0 {
		return apperrors.ErrInvalidPaidAmount
	}
	if inc > amount || inc > amount-alreadyPaid {
		return apperrors.WithMessagef(apperrors.ErrBadRequest,
			"Paid amount is greater than the total amount (%s) paid (%s), the investor should pay %s",
			formatAmount(amount), formatAmount(alreadyPaid), formatAmount(amount-alreadyPaid))
	}
	return nil
}

// anyOf builds an OR condition from column/value pairs, skipping empty values.
func anyOf(pairs ...string) (string, []any) {
	var clauses []string
	var args []any
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		clauses = append(clauses, pairs[i]+" = ?")
		args = append(args, pairs[i+1])
	}
	return strings.Join(clauses, " OR "), args
}

func (s *expenseService) GetMaintenanceExpenseByID(id string) (*models.MaintenanceExpense, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var expense models.MaintenanceExpense
	if err := s.db.Preload("Documents").First(&expense, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrMaintenanceExpenseNotFound)
	}
	return &expense, nil
}

// ListMaintenanceExpenses returns the maintenance expenses matching any set
// filter field, or all of them when the filter is empty.
func (s *expenseService) ListMaintenanceExpenses(filter ExpenseFilter) ([]models.MaintenanceExpense, error) {
	query := s.db.Model(&models.MaintenanceExpense{})
	if where, args := anyOf(
		"investor_id", filter.InvestorID,
		"id", filter.ExpenseID,
		"property_id", filter.PropertyID,
	); where != "" {
		query = query.Where(where, args...)
	}

	var expenses []models.MaintenanceExpense
	if err := query.Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	if expenses == nil {
		expenses = []models.MaintenanceExpense{}
	}
	return expenses, nil
}

// PayMaintenanceExpense adds a payment to the maintenance expense owned by the investor.
func (s *expenseService) PayMaintenanceExpense(input MaintenancePaymentInput) (*models.MaintenanceExpense, error) {
	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	var expense models.MaintenanceExpense
	err := s.db.Where("id = ? AND investor_id = ?", input.MaintenanceExpenseID, input.InvestorID).
		First(&expense).Error
	if err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrMaintenanceExpenseNotFound)
	}

	if err := validatePaidAmount(expense.Amount, expense.Paid, input.Paid); err != nil {
		return nil, err
	}

	if err := s.db.Model(&expense).Update("paid", gorm.Expr("paid + ?", input.Paid)).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	if err := s.db.First(&expense, "id = ?", expense.ID).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &expense, nil
}

// CreateExpense bills a custom expense to an existing investor.
func (s *expenseService) CreateExpense(input ExpenseInput) (*models.Expense, error) {
	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	if err := s.db.Select("id").First(&models.Investor{}, "id = ?", input.ForInvestorID).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
	}

	expense := &models.Expense{
		Name:          input.Name,
		Amount:        input.Amount,
		Paid:          input.Paid,
		ForInvestorID: input.ForInvestorID,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return expense, nil
}

func (s *expenseService) GetExpenseByID(id string) (*models.Expense, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var expense models.Expense
	if err := s.db.Preload("ForInvestor").Preload("Documents").First(&expense, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrExpenseNotFound)
	}
	return &expense, nil
}

// ListExpenses returns the custom expenses matching any set filter field.
// PropertyID does not apply to custom expenses.
func (s *expenseService) ListExpenses(filter ExpenseFilter, mode softdelete.Mode) ([]models.Expense, error) {
	query := s.db.Model(&models.Expense{}).Scopes(softdelete.Filter(mode))

	if where, args := anyOf(
		"for_investor_id", filter.InvestorID,
		"id", filter.ExpenseID,
	); where != "" {
		query = query.Where(where, args...)
	}

	var expenses []models.Expense
	if err := query.Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// UpdateExpense changes a custom expense. The amount cannot drop below what is already paid.
func (s *expenseService) UpdateExpense(id string, input ExpenseUpdateInput) (*models.Expense, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	var expense models.Expense
	if err := s.db.First(&expense, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrExpenseNotFound)
	}

	if input.Name != nil {
		expense.Name = *input.Name
	}
	if input.Amount != nil {
		if *input.Amount < expense.Paid {
			return nil, apperrors.WithMessagef(apperrors.ErrBadRequest,
				"Amount cannot be less than the paid amount (%s)", formatAmount(expense.Paid))
		}
		expense.Amount = *input.Amount
	}
	if input.ForInvestorID != nil {
		if err := s.db.Select("id").First(&models.Investor{}, "id = ?", *input.ForInvestorID).Error; err != nil {
			return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
		}
		expense.ForInvestorID = *input.ForInvestorID
	}

	if err := s.db.Save(&expense).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &expense, nil
}

// PayCustomExpense adds a payment to a custom expense.
func (s *expenseService) PayCustomExpense(input CustomPaymentInput) (*models.Expense, error) {
	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	var expense models.Expense
	if err := s.db.First(&expense, "id = ?", input.ExpenseID).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrExpenseNotFound)
	}

	if err := validatePaidAmount(expense.Amount, expense.Paid, input.PaidAmount); err != nil {
		return nil, err
	}

	if err := s.db.Model(&expense).Update("paid", gorm.Expr("paid + ?", input.PaidAmount)).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	if err := s.db.First(&expense, "id = ?", expense.ID).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &expense, nil
}

// DeleteExpense soft-deletes a custom expense, or removes it when hard is set.
func (s *expenseService) DeleteExpense(id string, hard bool) error {
	if _, err := uuid.Require("id", id); err != nil {
		return err
	}

	n, err := softdelete.Delete(s.db.Where("id = ?", id), &models.Expense{}, hard)
	if err != nil {
		return apperrors.FromDB(err)
	}
	if n == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
