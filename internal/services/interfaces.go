package services

import (
	"io"
	"strings"
	"time"

	"estatedesk/internal/models"
	"estatedesk/internal/pagination"
	"estatedesk/internal/softdelete"
)

// RegisterInput is the payload for creating a user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password,nefield=Email"`
}

// Normalize trims the name and lower-cases the email.
func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// LoginInput is the payload for signing in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize lower-cases the email.
func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(input RegisterInput) (*models.User, error)
	Login(input LoginInput) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// InvestorInput is the payload for creating an investor.
type InvestorInput struct {
	Name    string               `json:"name" validate:"required,min=2,max=255"`
	Email   string               `json:"email" validate:"required,email"`
	Code    *int                 `json:"code" validate:"required"`
	Phone   string               `json:"phone" validate:"required,min=10,max=12"`
	Bank    []models.BankAccount `json:"bank" validate:"required,min=1,dive"`
	Address string               `json:"address" validate:"required,min=2,max=255"`
	Balance *float64             `json:"balance" validate:"required"`
}

// Normalize lower-cases the email.
func (in *InvestorInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// InvestorUpdateInput is a partial investor update; nil fields are left unchanged.
type InvestorUpdateInput struct {
	Name    *string              `json:"name" validate:"omitempty,min=2,max=255"`
	Email   *string              `json:"email" validate:"omitempty,email"`
	Code    *int                 `json:"code"`
	Phone   *string              `json:"phone" validate:"omitempty,min=10,max=12"`
	Bank    []models.BankAccount `json:"bank" validate:"omitempty,min=1,dive"`
	Address *string              `json:"address" validate:"omitempty,min=2,max=255"`
	Balance *float64             `json:"balance"`
}

// Normalize lower-cases the email.
func (in *InvestorUpdateInput) Normalize() {
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &email
	}
}

// InvestorCounts holds the number of active related records.
type InvestorCounts struct {
	Agents              int64 `json:"agents"`
	Investments         int64 `json:"investments"`
	Expenses            int64 `json:"expenses"`
	MaintenanceExpenses int64 `json:"maintenanceExpenses"`
	Properties          int64 `json:"properties"`
}

// InvestorDetail is an investor with its agents, investments and relation counts.
type InvestorDetail struct {
	models.Investor
	Count InvestorCounts `json:"_count"`
}

// InvestorSummary is a row of the investor listing.
type InvestorSummary struct {
	models.Investor
	InvestmentsCount int64        `json:"investmentsCount"`
	ROI              models.Ratio `json:"ROI"`
}

// InvestorServicer defines the contract for investor-related business logic.
type InvestorServicer interface {
	CreateInvestor(updatedBy string, input InvestorInput) (*models.Investor, error)
	GetInvestorByID(id string) (*InvestorDetail, error)
	ListInvestors(page pagination.PageRequest, mode softdelete.Mode) (*pagination.PageResponse[InvestorSummary], error)
	UpdateInvestor(id, updatedBy string, input InvestorUpdateInput) (*models.Investor, error)
	DeleteInvestor(id string, hard bool) error
	RestoreInvestor(id string) (*models.Investor, error)
}

// AgentInput is the payload for creating an agent.
type AgentInput struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Phone      string `json:"phone" validate:"required,min=10,max=12"`
	Address    string `json:"address" validate:"required,min=2,max=255"`
	InvestorID string `json:"investorId" validate:"required,uuid"`
}

// AgentServicer defines the contract for agent-related business logic.
type AgentServicer interface {
	CreateAgent(input AgentInput) (*models.Agent, error)
	GetAgentByID(id string) (*models.Agent, error)
	GetAgentsByInvestorID(investorID string) ([]models.Agent, error)
	LinkAgentToInvestor(agentID, investorID string) (*models.Agent, error)
	UnlinkAgent(agentID string) error
}

// PropertyInput is the payload for creating a property.
type PropertyInput struct {
	Name       string  `json:"name" validate:"required,min=2,max=255"`
	Floor      *int    `json:"floor" validate:"required"`
	Area       float64 `json:"area" validate:"required,gt=0"`
	Direction  string  `json:"direction" validate:"required,max=255"`
	Elevators  *int    `json:"elevators" validate:"required,gte=0"`
	InvestorID *string `json:"investorId" validate:"omitempty,uuid"`
}

// PropertyUpdateInput is a partial property update. Ownership changes go
// through BuyProperty and SellProperty.
type PropertyUpdateInput struct {
	Name      *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Floor     *int     `json:"floor"`
	Area      *float64 `json:"area" validate:"omitempty,gt=0"`
	Direction *string  `json:"direction" validate:"omitempty,max=255"`
	Elevators *int     `json:"elevators" validate:"omitempty,gte=0"`
}

// PropertyServicer defines the contract for property-related business logic.
type PropertyServicer interface {
	CreateProperty(input PropertyInput) (*models.Property, error)
	GetProperty(id string) (*models.Property, error)
	UpdateProperty(id string, input PropertyUpdateInput) (*models.Property, error)
	BuyProperty(id, investorID string) (*models.Property, error)
	SellProperty(id string, investorID *string) (*models.Property, error)
}

// ExpenseInput is the payload for creating a custom expense.
type ExpenseInput struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Paid          float64 `json:"paid" validate:"gte=0,ltefield=Amount"`
	ForInvestorID string  `json:"forInvestorId" validate:"required,uuid"`
}

// ExpenseUpdateInput is a partial custom expense update. Paid is not
// updatable; payments go through PayCustomExpense.
type ExpenseUpdateInput struct {
	Name          *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
	ForInvestorID *string  `json:"forInvestorId" validate:"omitempty,uuid"`
}

// MaintenancePaymentInput pays part of a maintenance expense.
type MaintenancePaymentInput struct {
	MaintenanceExpenseID string  `json:"maintenanceExpenseId" validate:"required,uuid"`
	InvestorID           string  `json:"investorId" validate:"required,uuid"`
	Paid                 float64 `json:"paid" validate:"gt=0"`
}

// CustomPaymentInput pays part of a custom expense.
type CustomPaymentInput struct {
	ExpenseID  string  `json:"expenseId" validate:"required,uuid"`
	PaidAmount float64 `json:"paidAmount" validate:"gt=0"`
}

// ExpenseFilter selects expenses matching any of the set fields.
type ExpenseFilter struct {
	InvestorID string `form:"investorId" binding:"omitempty,uuid"`
	ExpenseID  string `form:"expenseId" binding:"omitempty,uuid"`
	PropertyID string `form:"propertyId" binding:"omitempty,uuid"`
}

// ExpenseServicer defines the contract for maintenance and custom expenses.
type ExpenseServicer interface {
	GetMaintenanceExpenseByID(id string) (*models.MaintenanceExpense, error)
	ListMaintenanceExpenses(filter ExpenseFilter) ([]models.MaintenanceExpense, error)
	PayMaintenanceExpense(input MaintenancePaymentInput) (*models.MaintenanceExpense, error)

	CreateExpense(input ExpenseInput) (*models.Expense, error)
	GetExpenseByID(id string) (*models.Expense, error)
	ListExpenses(filter ExpenseFilter, mode softdelete.Mode) ([]models.Expense, error)
	UpdateExpense(id string, input ExpenseUpdateInput) (*models.Expense, error)
	PayCustomExpense(input CustomPaymentInput) (*models.Expense, error)
	DeleteExpense(id string, hard bool) error
}

// InvestmentInput is the payload for creating or replacing an investment.
type InvestmentInput struct {
	Type            models.InvestmentType `json:"type" validate:"required,investment_type"`
	Amount          float64               `json:"amount" validate:"required,gte=1"`
	ValueOnMaturity float64               `json:"valueOnMaturity" validate:"required,gte=1"`
	InterestRate    float64               `json:"interestRate" validate:"required,gte=0.01,lte=1"`
	RedemptionDate  time.Time             `json:"redemptionDate" validate:"required,future"`
	Bank            models.BankAccount    `json:"bank"`
	CustomID        *string               `json:"customId" validate:"omitempty,max=255"`
	InvestorID      string                `json:"investorId" validate:"required,uuid"`
}

// RedeemInput closes an investment early at the given value.
type RedeemInput struct {
	ValueOnMaturity *float64 `json:"valueOnMaturity" validate:"required,gte=0"`
}

// Date filter columns for investment listings.
const (
	DateFilterCreatedAt      = "createdAt"
	DateFilterRedemptionDate = "redemptionDate"
)

// InvestmentFilter narrows investment listings.
type InvestmentFilter struct {
	StartDate      *time.Time            `form:"startDate" time_format:"2006-01-02"`
	EndDate        *time.Time            `form:"endDate" time_format:"2006-01-02"`
	DateFilterType string                `form:"dateFilterType" binding:"omitempty,oneof=createdAt redemptionDate"`
	Type           models.InvestmentType `form:"type" binding:"omitempty,investment_type"`
	InvestorID     string                `form:"investorId" binding:"omitempty,uuid"`
	WithInvestor   bool                  `form:"withInvestor"`
}

// AggregateFilter narrows the investment aggregate by creation date and investor.
type AggregateFilter struct {
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02"`
	InvestorID string     `form:"investorId" binding:"omitempty,uuid"`
}

// InvestmentAggregate summarises investments and investor balances.
type InvestmentAggregate struct {
	TotalInvestorsBalance float64      `json:"totalInvestorsBalance"`
	TotalAmount           float64      `json:"totalAmount"`
	TotalValueOnMaturity  float64      `json:"totalValueOnMaturity"`
	TotalProfit           float64      `json:"totalProfit"`
	AvgInterestRate       float64      `json:"avgInterestRate"`
	AvgROI                models.Ratio `json:"avgROI"`
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	CreateInvestment(createdByID string, input InvestmentInput) (*models.Investment, error)
	GetAllInvestments(filter InvestmentFilter) ([]models.Investment, error)
	GetInvestmentByID(id string) (*models.Investment, error)
	UpdateInvestment(id string, input InvestmentInput) (*models.Investment, error)
	EarlyRedeemInvestment(id string, input RedeemInput) (*models.Investment, error)
	DeleteInvestment(id string, hard bool) error
	AggregateInvestments(filter AggregateFilter) (*InvestmentAggregate, error)
	SweepMaturedInvestments() (int64, error)
}

// DocumentOwner links an uploaded document to at most one record.
type DocumentOwner struct {
	ExpenseID            *string `form:"expenseId" validate:"omitempty,uuid"`
	MaintenanceExpenseID *string `form:"maintenanceExpenseId" validate:"omitempty,uuid"`
	InvestmentID         *string `form:"investmentId" validate:"omitempty,uuid"`
	PropertyID           *string `form:"propertyId" validate:"omitempty,uuid"`
	AgentID              *string `form:"agentId" validate:"omitempty,uuid"`
}

// DocumentServicer defines the contract for uploaded documents.
type DocumentServicer interface {
	Upload(name string, content io.Reader, owner DocumentOwner) (*models.Document, error)
	ListDocuments(page pagination.PageRequest) (*pagination.PageResponse[models.Document], error)
	GetDocument(id string) (*models.Document, error)
	FilePath(doc *models.Document) string
	ThumbnailPath(id string) (string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
