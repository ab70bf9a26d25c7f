package services

import (
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/models"
	"estatedesk/internal/softdelete"
	"estatedesk/internal/uuid"
	"estatedesk/internal/validator"
)

// maturityTolerance absorbs float rounding in amount * (1 + rate).
const maturityTolerance = 1e-9

// investmentService handles investment-related business logic.
type investmentService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db, now: time.Now}
}

// midnight truncates t to the start of its day in server-local time.
func midnight(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// formatAmount renders a money value for error messages, dropping float noise.
func formatAmount(f float64) string {
	return strconv.FormatFloat(math.Round(f*1e6)/1e6, 'f', -1, 64)
}

// checkMaturityBounds enforces amount <= valueOnMaturity <= amount * (1 + rate).
func checkMaturityBounds(amount, rate, valueOnMaturity float64) error {
	if valueOnMaturity < amount {
		return apperrors.ErrMaturityBelowAmount
	}
	if limit := amount * (1 + rate); valueOnMaturity > limit+maturityTolerance {
		return apperrors.WithMessagef(apperrors.ErrBadRequest, "Value on maturity cannot be more than %s", formatAmount(limit))
	}
	return nil
}

// settleMatured marks every loaded investment whose redemption date has
// passed as redeemed, persists the change, and fills in ROI.
func settleMatured(db *gorm.DB, investments []models.Investment, now time.Time) error {
	today := midnight(now)

	var matured []string
	for i := range investments {
		inv := &investments[i]
		if !inv.Redeemed && !inv.RedemptionDate.After(today) {
			inv.Redeemed = true
			matured = append(matured, inv.ID)
		}
		inv.ROI = inv.ComputeROI()
	}

	if len(matured) == 0 {
		return nil
	}
	if err := db.Model(&models.Investment{}).Where("id IN ?", matured).Update("redeemed", true).Error; err != nil {
		return apperrors.FromDB(err)
	}
	return nil
}

// activeInvestmentsTotal sums the amounts of the investor's non-redeemed
// investments, optionally ignoring one of them.
func (s *investmentService) activeInvestmentsTotal(investorID, excludeID string) (float64, error) {
	query := s.db.Model(&models.Investment{}).
		Where("investor_id = ? AND redeemed = ?", investorID, false)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var total float64
	if err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, apperrors.FromDB(err)
	}
	return total, nil
}

func (s *investmentService) checkBalance(investorID, excludeID string, amount float64) error {
	var investor models.Investor
	if err := s.db.Select("id", "balance").First(&investor, "id = ?", investorID).Error; err != nil {
		return apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
	}

	active, err := s.activeInvestmentsTotal(investorID, excludeID)
	if err != nil {
		return err
	}
	if active+amount > investor.Balance {
		return apperrors.ErrInsufficientBalance
	}
	return nil
}

// CreateInvestment validates the terms, checks the investor can afford it,
// and stores it with its redemption date moved to midnight.
func (s *investmentService) CreateInvestment(createdByID string, input InvestmentInput) (*models.Investment, error) {
	if createdByID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	if err := checkMaturityBounds(input.Amount, input.InterestRate, input.ValueOnMaturity); err != nil {
		return nil, err
	}
	if err := s.checkBalance(input.InvestorID, "", input.Amount); err != nil {
		return nil, err
	}

	investment := &models.Investment{
		Amount:          input.Amount,
		InterestRate:    input.InterestRate,
		ValueOnMaturity: input.ValueOnMaturity,
		RedemptionDate:  midnight(input.RedemptionDate),
		Type:            input.Type,
		Redeemed:        false,
		Bank:            input.Bank,
		CustomID:        input.CustomID,
		InvestorID:      input.InvestorID,
		CreatedByID:     createdByID,
	}
	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	investment.ROI = investment.ComputeROI()
	return investment, nil
}

// GetAllInvestments lists investments matching filter, redeeming matured ones on the way.
func (s *investmentService) GetAllInvestments(filter InvestmentFilter) ([]models.Investment, error) {
	column := "redemption_date"
	if filter.DateFilterType == DateFilterCreatedAt {
		column = "created_at"
	}

	query := s.db.Model(&models.Investment{})
	if filter.StartDate != nil {
		query = query.Where(column+" >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where(column+" <= ?", *filter.EndDate)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.InvestorID != "" {
		query = query.Where("investor_id = ?", filter.InvestorID)
	}
	if filter.WithInvestor {
		query = query.Preload("Investor")
	}

	var investments []models.Investment
	if err := query.Order("redemption_date ASC").Find(&investments).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	if err := settleMatured(s.db, investments, s.now()); err != nil {
		return nil, err
	}
	if investments == nil {
		investments = []models.Investment{}
	}
	return investments, nil
}

// GetInvestmentByID retrieves an investment with its investor.
func (s *investmentService) GetInvestmentByID(id string) (*models.Investment, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var investment models.Investment
	if err := s.db.Preload("Investor").First(&investment, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestmentNotFound)
	}

	batch := []models.Investment{investment}
	if err := settleMatured(s.db, batch, s.now()); err != nil {
		return nil, err
	}
	return &batch[0], nil
}

func (s *investmentService) findActive(id string) (*models.Investment, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var investment models.Investment
	if err := s.db.First(&investment, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestmentNotFound)
	}
	return &investment, nil
}

// UpdateInvestment replaces the terms of an investment that is not yet redeemed.
func (s *investmentService) UpdateInvestment(id string, input InvestmentInput) (*models.Investment, error) {
	investment, err := s.findActive(id)
	if err != nil {
		return nil, err
	}
	if investment.Redeemed {
		return nil, apperrors.ErrRedeemedUpdate
	}

	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	if err := checkMaturityBounds(input.Amount, input.InterestRate, input.ValueOnMaturity); err != nil {
		return nil, err
	}
	if err := s.checkBalance(input.InvestorID, investment.ID, input.Amount); err != nil {
		return nil, err
	}

	investment.Amount = input.Amount
	investment.InterestRate = input.InterestRate
	investment.ValueOnMaturity = input.ValueOnMaturity
	investment.RedemptionDate = midnight(input.RedemptionDate)
	investment.Type = input.Type
	investment.Bank = input.Bank
	investment.CustomID = input.CustomID
	investment.InvestorID = input.InvestorID

	if err := s.db.Save(investment).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	investment.ROI = investment.ComputeROI()
	return investment, nil
}

// EarlyRedeemInvestment closes an investment today at the given value.
func (s *investmentService) EarlyRedeemInvestment(id string, input RedeemInput) (*models.Investment, error) {
	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	valueOnMaturity := *res.Value.ValueOnMaturity

	investment, err := s.findActive(id)
	if err != nil {
		return nil, err
	}
	if investment.Redeemed {
		return nil, apperrors.ErrInvestmentRedeemed
	}
	if err := checkMaturityBounds(investment.Amount, investment.InterestRate, valueOnMaturity); err != nil {
		return nil, err
	}

	investment.ValueOnMaturity = valueOnMaturity
	investment.RedemptionDate = s.now()
	investment.Redeemed = true
	if err := s.db.Model(investment).Updates(map[string]any{
		"value_on_maturity": investment.ValueOnMaturity,
		"redemption_date":   investment.RedemptionDate,
		"redeemed":          true,
	}).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	investment.ROI = investment.ComputeROI()
	return investment, nil
}

// DeleteInvestment removes an investment that is not yet redeemed.
func (s *investmentService) DeleteInvestment(id string, hard bool) error {
	investment, err := s.findActive(id)
	if err != nil {
		return err
	}
	if investment.Redeemed {
		return apperrors.ErrRedeemedDelete
	}

	if _, err := softdelete.Delete(s.db, investment, hard); err != nil {
		return apperrors.FromDB(err)
	}
	return nil
}

type investmentSums struct {
	Amount          *float64
	ValueOnMaturity *float64
	InterestRate    *float64
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// AggregateInvestments totals investor balances and investment returns.
// With no matching investments AvgROI is NaN, which is rendered as null.
func (s *investmentService) AggregateInvestments(filter AggregateFilter) (*InvestmentAggregate, error) {
	balances := s.db.Model(&models.Investor{})
	if filter.StartDate != nil {
		balances = balances.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		balances = balances.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.InvestorID != "" {
		balances = balances.Where("id = ?", filter.InvestorID)
	}

	var totalBalance float64
	if err := balances.Select("COALESCE(SUM(balance), 0)").Scan(&totalBalance).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	sums := s.db.Model(&models.Investment{}).
		Joins("JOIN investors ON investors.id = investments.investor_id AND investors.deleted_at IS NULL")
	if filter.StartDate != nil {
		sums = sums.Where("investments.created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		sums = sums.Where("investments.created_at <= ?", *filter.EndDate)
	}
	if filter.InvestorID != "" {
		sums = sums.Where("investments.investor_id = ?", filter.InvestorID)
	}

	var row investmentSums
	if err := sums.Select(
		"SUM(investments.amount) AS amount, " +
			"SUM(investments.value_on_maturity) AS value_on_maturity, " +
			"AVG(investments.interest_rate) AS interest_rate",
	).Scan(&row).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	amount := valueOrZero(row.Amount)
	valueOnMaturity := valueOrZero(row.ValueOnMaturity)

	agg := &InvestmentAggregate{
		TotalInvestorsBalance: totalBalance,
		TotalAmount:           amount,
		TotalValueOnMaturity:  valueOnMaturity,
		AvgInterestRate:       valueOrZero(row.InterestRate) * 100,
		AvgROI:                models.Ratio((valueOnMaturity - amount) / amount * 100),
	}
	if amount != 0 && valueOnMaturity != 0 {
		agg.TotalProfit = valueOnMaturity - amount
	}
	return agg, nil
}

// SweepMaturedInvestments redeems every investment whose redemption date has passed.
func (s *investmentService) SweepMaturedInvestments() (int64, error) {
	res := s.db.Model(&models.Investment{}).
		Where("redeemed = ? AND redemption_date <= ?", false, midnight(s.now())).
		Update("redeemed", true)
	if res.Error != nil {
		return 0, apperrors.FromDB(res.Error)
	}
	return res.RowsAffected, nil
}
