package services

import (
	"gorm.io/gorm"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/models"
	"estatedesk/internal/softdelete"
	"estatedesk/internal/uuid"
	"estatedesk/internal/validator"
)

// agentService handles agent-related business logic.
type agentService struct {
	db *gorm.DB
}

// NewAgentService creates a new AgentServicer.
func NewAgentService(db *gorm.DB) AgentServicer {
	return &agentService{db: db}
}

func (s *agentService) requireInvestor(id string) error {
	if err := s.db.Select("id").First(&models.Investor{}, "id = ?", id).Error; err != nil {
		return apperrors.NotFoundOr(err, apperrors.ErrInvestorNotFound)
	}
	return nil
}

// CreateAgent makes the new agent the investor's only active agent. Agents
// it replaces are soft-deleted in the same transaction.
func (s *agentService) CreateAgent(input AgentInput) (*models.Agent, error) {
	res := validator.Validate(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	input = res.Value

	if err := s.requireInvestor(input.InvestorID); err != nil {
		return nil, err
	}

	agent := &models.Agent{
		Name:       input.Name,
		Phone:      input.Phone,
		Address:    input.Address,
		InvestorID: input.InvestorID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("investor_id = ?", input.InvestorID).Delete(&models.Agent{}).Error; err != nil {
			return err
		}
		return tx.Create(agent).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return agent, nil
}

// GetAgentByID returns an agent, including replaced ones.
func (s *agentService) GetAgentByID(id string) (*models.Agent, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var agent models.Agent
	if err := s.db.Unscoped().Preload("Documents").First(&agent, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrAgentNotFound)
	}
	return &agent, nil
}

// GetAgentsByInvestorID lists every agent the investor has had, active first.
func (s *agentService) GetAgentsByInvestorID(investorID string) ([]models.Agent, error) {
	if _, err := uuid.Require("id", investorID); err != nil {
		return nil, err
	}

	var agents []models.Agent
	err := s.db.Scopes(softdelete.Filter(softdelete.All)).
		Where("investor_id = ?", investorID).
		Order("deleted_at IS NOT NULL, created_at DESC").
		Find(&agents).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	if agents == nil {
		agents = []models.Agent{}
	}
	return agents, nil
}

// LinkAgentToInvestor moves an active agent to another investor.
func (s *agentService) LinkAgentToInvestor(agentID, investorID string) (*models.Agent, error) {
	if _, err := uuid.Require("id", agentID); err != nil {
		return nil, err
	}
	if _, err := uuid.Require("investorId", investorID); err != nil {
		return nil, err
	}

	var agent models.Agent
	if err := s.db.First(&agent, "id = ?", agentID).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrAgentNotFound)
	}
	if err := s.requireInvestor(investorID); err != nil {
		return nil, err
	}

	if err := s.db.Model(&agent).Update("investor_id", investorID).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	agent.InvestorID = investorID
	return &agent, nil
}

// UnlinkAgent retires an agent by soft-deleting it.
func (s *agentService) UnlinkAgent(agentID string) error {
	if _, err := uuid.Require("id", agentID); err != nil {
		return err
	}

	n, err := softdelete.Delete(s.db.Where("id = ?", agentID), &models.Agent{}, false)
	if err != nil {
		return apperrors.FromDB(err)
	}
	if n == 0 {
		return apperrors.ErrAgentNotFound
	}
	return nil
}
