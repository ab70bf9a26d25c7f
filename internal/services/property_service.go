package services

import (
	"gorm.io/gorm"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/models"
	"estatedesk/internal/uuid"
	"estatedesk/internal/validator"
)

// propertyService handles properties and their maintenance expense.
type propertyService struct {
	db           *gorm.DB
	ratePerMeter float64
}

// NewPropertyService creates a new PropertyServicer. ratePerMeter prices the
// maintenance expense created with each property.
func NewPropertyService(db *gorm.DB, ratePerMeter float64) PropertyServicer {
	return &propertyService{db: db, ratePerMeter: ratePerMeter}
}

// CreateProperty stores a property together with its maintenance expense of
// area * ratePerMeter, both owned by the optional investor.
func (s *propertyService) CreateProperty(input PropertyInput) (*models.Property, error) {
	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	if input.InvestorID != nil {
		if err := s.db.Select("id").First(&models.Investor{}, "id = ?", *input.InvestorID).Error; err != nil {
			return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
		}
	}

	property := &models.Property{
		Name:       input.Name,
		Floor:      *input.Floor,
		Area:       input.Area,
		Direction:  input.Direction,
		Elevators:  *input.Elevators,
		InvestorID: input.InvestorID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("MaintenanceExpense", "Investor", "Documents").Create(property).Error; err != nil {
			return err
		}
		maintenance := &models.MaintenanceExpense{
			PropertyID: property.ID,
			InvestorID: input.InvestorID,
			Amount:     input.Area * s.ratePerMeter,
		}
		if err := tx.Create(maintenance).Error; err != nil {
			return err
		}
		property.MaintenanceExpense = maintenance
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return property, nil
}

// GetProperty returns a property with its owner and maintenance expense.
func (s *propertyService) GetProperty(id string) (*models.Property, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var property models.Property
	err := s.db.
		Preload("Investor").
		Preload("MaintenanceExpense").
		Preload("Documents").
		First(&property, "id = ?", id).Error
	if err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrPropertyNotFound)
	}
	return &property, nil
}

// UpdateProperty applies a partial update. The maintenance amount was fixed
// at creation and does not follow area changes.
func (s *propertyService) UpdateProperty(id string, input PropertyUpdateInput) (*models.Property, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrPropertyNotFound)
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.Floor != nil {
		property.Floor = *input.Floor
	}
	if input.Area != nil {
		property.Area = *input.Area
	}
	if input.Direction != nil {
		property.Direction = *input.Direction
	}
	if input.Elevators != nil {
		property.Elevators = *input.Elevators
	}

	if err := s.db.Save(&property).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &property, nil
}

// BuyProperty assigns the property and its maintenance expense to an investor.
func (s *propertyService) BuyProperty(id, investorID string) (*models.Property, error) {
	if _, err := uuid.Require("investorId", investorID); err != nil {
		return nil, err
	}
	return s.transfer(id, &investorID)
}

// SellProperty transfers the property to investorID, or leaves it without
// an owner when investorID is nil.
func (s *propertyService) SellProperty(id string, investorID *string) (*models.Property, error) {
	if investorID != nil {
		if _, err := uuid.Require("investorId", *investorID); err != nil {
			return nil, err
		}
	}
	return s.transfer(id, investorID)
}

func (s *propertyService) transfer(id string, investorID *string) (*models.Property, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrPropertyNotFound)
	}
	if investorID != nil {
		if err := s.db.Select("id").First(&models.Investor{}, "id = ?", *investorID).Error; err != nil {
			return nil, apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&property).Update("investor_id", investorID).Error; err != nil {
			return err
		}
		return tx.Model(&models.MaintenanceExpense{}).
			Where("property_id = ?", property.ID).
			Update("investor_id", investorID).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}

	return s.GetProperty(property.ID)
}
