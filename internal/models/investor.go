package models

// BankAccount is a bank/account-number pair. Investors hold a list of them;
// investments keep a snapshot of the one used.
type BankAccount struct {
	BankName      string `json:"bankName" validate:"required,min=2,max=255"`
	AccountNumber string `json:"accountNumber" validate:"required,min=2,max=255"`
}

// Investor owns properties and investments and pays expenses.
type Investor struct {
	Base
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Code      int           `gorm:"not null;index" json:"code"`
	Phone     string        `gorm:"not null" json:"phone"`
	Address   string        `gorm:"not null" json:"address"`
	Bank      []BankAccount `gorm:"type:jsonb;serializer:json" json:"bank"`
	Balance   float64       `gorm:"not null;default:0" json:"balance"`
	UpdatedBy string        `gorm:"type:uuid" json:"updatedBy"`

	Agents              []Agent              `gorm:"foreignKey:InvestorID" json:"agents,omitempty"`
	Investments         []Investment         `gorm:"foreignKey:InvestorID" json:"investments,omitempty"`
	Expenses            []Expense            `gorm:"foreignKey:ForInvestorID" json:"expenses,omitempty"`
	MaintenanceExpenses []MaintenanceExpense `gorm:"foreignKey:InvestorID" json:"maintenanceExpenses,omitempty"`
	Properties          []Property           `gorm:"foreignKey:InvestorID" json:"properties,omitempty"`
}

// Agent represents an investor. An investor has one active agent; replaced
// agents stay on record soft-deleted.
type Agent struct {
	Base
	Name       string `gorm:"not null" json:"name"`
	Phone      string `gorm:"not null" json:"phone"`
	Address    string `gorm:"not null" json:"address"`
	InvestorID string `gorm:"type:uuid;not null;index" json:"investorId"`

	Documents []Document `gorm:"foreignKey:AgentID" json:"documents,omitempty"`
}
