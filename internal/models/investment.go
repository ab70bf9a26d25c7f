package models

import (
	"encoding/json"
	"math"
	"time"
)

// InvestmentType is the kind of instrument.
type InvestmentType string

const (
	InvestmentTypeBonds        InvestmentType = "BONDS"
	InvestmentTypeCertificates InvestmentType = "CERTIFICATES"
)

// Investment is a fixed-term placement made on behalf of an investor.
// Once redeemed it can no longer be changed or deleted.
type Investment struct {
	Base
	Amount          float64        `gorm:"not null" json:"amount"`
	InterestRate    float64        `gorm:"not null" json:"interestRate"`
	ValueOnMaturity float64        `gorm:"not null" json:"valueOnMaturity"`
	RedemptionDate  time.Time      `gorm:"not null;index" json:"redemptionDate"`
	Type            InvestmentType `gorm:"not null" json:"type"`
	Redeemed        bool           `gorm:"not null;default:false" json:"redeemed"`
	Bank            BankAccount    `gorm:"type:jsonb;serializer:json" json:"bank"`
	CustomID        *string        `json:"customId"`
	InvestorID      string         `gorm:"type:uuid;not null;index" json:"investorId"`
	CreatedByID     string         `gorm:"type:uuid;not null" json:"createdById"`
	ROI             Ratio          `gorm:"-" json:"ROI"` // derived on read

	Investor  *Investor  `gorm:"foreignKey:InvestorID" json:"investor,omitempty"`
	Documents []Document `gorm:"foreignKey:InvestmentID" json:"documents,omitempty"`
}

// ComputeROI returns (valueOnMaturity - amount) / amount * 100.
func (i *Investment) ComputeROI() Ratio {
	return Ratio((i.ValueOnMaturity - i.Amount) / i.Amount * 100)
}

// Ratio is a derived percentage. Non-finite values (a division by zero)
// are kept in memory and encoded as JSON null.
type Ratio float64

// MarshalJSON implements json.Marshaler.
func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// IsFinite reports whether the ratio is a real number.
func (r Ratio) IsFinite() bool {
	f := float64(r)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
