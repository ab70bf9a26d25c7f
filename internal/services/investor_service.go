package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/models"
	"estatedesk/internal/pagination"
	"estatedesk/internal/softdelete"
	"estatedesk/internal/uuid"
	"estatedesk/internal/validator"
)

// investorService handles investor-related business logic.
type investorService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewInvestorService creates a new InvestorServicer.
func NewInvestorService(db *gorm.DB) InvestorServicer {
	return &investorService{db: db, now: time.Now}
}

// CreateInvestor creates an investor on behalf of the signed-in user.
func (s *investorService) CreateInvestor(updatedBy string, input InvestorInput) (*models.Investor, error) {
	if updatedBy == "" {
		return nil, apperrors.ErrUnauthorized
	}

	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	investor := &models.Investor{
		Name:      input.Name,
		Email:     input.Email,
		Code:      *input.Code,
		Phone:     input.Phone,
		Address:   input.Address,
		Bank:      input.Bank,
		Balance:   *input.Balance,
		UpdatedBy: updatedBy,
	}
	if err := s.db.Create(investor).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return investor, nil
}

// GetInvestorByID returns an investor, deleted or not, with its agents
// (active first), its active investments and relation counts.
func (s *investorService) GetInvestorByID(id string) (*InvestorDetail, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var investor models.Investor
	if err := s.db.Unscoped().First(&investor, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
	}

	err := s.db.Unscoped().
		Where("investor_id = ?", investor.ID).
		Order("deleted_at IS NOT NULL, created_at DESC").
		Find(&investor.Agents).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	err = s.db.Where("investor_id = ?", investor.ID).
		Order("redemption_date ASC").
		Find(&investor.Investments).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	if err := settleMatured(s.db, investor.Investments, s.now()); err != nil {
		return nil, err
	}

	counts, err := s.relationCounts(investor.ID)
	if err != nil {
		return nil, err
	}
	return &InvestorDetail{Investor: investor, Count: counts}, nil
}

func (s *investorService) relationCounts(investorID string) (InvestorCounts, error) {
	var counts InvestorCounts
	for _, c := range []struct {
		model  any
		column string
		dst    *int64
	}{
		{&models.Agent{}, "investor_id", &counts.Agents},
		{&models.Investment{}, "investor_id", &counts.Investments},
		{&models.Expense{}, "for_investor_id", &counts.Expenses},
		{&models.MaintenanceExpense{}, "investor_id", &counts.MaintenanceExpenses},
		{&models.Property{}, "investor_id", &counts.Properties},
	} {
		if err := s.db.Model(c.model).Where(c.column+" = ?", investorID).Count(c.dst).Error; err != nil {
			return InvestorCounts{}, apperrors.FromDB(err)
		}
	}
	return counts, nil
}

// ListInvestors pages through investors ordered by code, each with the
// number of its active investments and their mean ROI.
func (s *investorService) ListInvestors(page pagination.PageRequest, mode softdelete.Mode) (*pagination.PageResponse[InvestorSummary], error) {
	page.Defaults(pagination.InvestorsPageSize)

	var total int64
	if err := s.db.Model(&models.Investor{}).Scopes(softdelete.Filter(mode)).Count(&total).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	var investors []models.Investor
	err := s.db.Scopes(softdelete.Filter(mode), pagination.Paginate(page)).
		Preload("Investments", "deleted_at IS NULL").
		Order("code ASC").
		Find(&investors).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	summaries := make([]InvestorSummary, 0, len(investors))
	for _, investor := range investors {
		summaries = append(summaries, summarize(investor))
	}

	resp := pagination.NewPageResponse(summaries, page.Page, page.PageSize, total)
	return &resp, nil
}

// summarize computes the listing decorations. An investor without
// investments has a NaN ROI.
func summarize(investor models.Investor) InvestorSummary {
	var sum float64
	for i := range investor.Investments {
		sum += float64(investor.Investments[i].ComputeROI())
	}

	n := len(investor.Investments)
	roi := math.NaN()
	if n > 0 {
		roi = sum / float64(n)
	}

	investor.Investments = nil
	return InvestorSummary{
		Investor:         investor,
		InvestmentsCount: int64(n),
		ROI:              models.Ratio(roi),
	}
}

// UpdateInvestor applies a partial update to an active investor.
func (s *investorService) UpdateInvestor(id, updatedBy string, input InvestorUpdateInput) (*models.Investor, error) {
	if updatedBy == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	var investor models.Investor
	if err := s.db.First(&investor, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
	}

	if input.Name != nil {
		investor.Name = *input.Name
	}
	if input.Email != nil {
		investor.Email = *input.Email
	}
	if input.Code != nil {
		investor.Code = *input.Code
	}
	if input.Phone != nil {
		investor.Phone = *input.Phone
	}
	if input.Bank != nil {
		investor.Bank = input.Bank
	}
	if input.Address != nil {
		investor.Address = *input.Address
	}
	if input.Balance != nil {
		investor.Balance = *input.Balance
	}
	investor.UpdatedBy = updatedBy

	if err := s.db.Save(&investor).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &investor, nil
}

// DeleteInvestor soft-deletes an investor, or removes it when hard is set.
func (s *investorService) DeleteInvestor(id string, hard bool) error {
	if _, err := uuid.Require("id", id); err != nil {
		return err
	}

	n, err := softdelete.Delete(s.db.Where("id = ?", id), &models.Investor{}, hard)
	if err != nil {
		return apperrors.FromDB(err)
	}
	if n == 0 {
		return apperrors.ErrInvestorNotFound
	}
	return nil
}

// RestoreInvestor brings back a soft-deleted investor.
func (s *investorService) RestoreInvestor(id string) (*models.Investor, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	n, err := softdelete.Restore(s.db, &models.Investor{}, id)
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	if n == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvestorNotFound, "Deleted investor not found")
	}

	var investor models.Investor
	if err := s.db.First(&investor, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
	}
	return &investor, nil
}
