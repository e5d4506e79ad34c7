package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateInvestigationRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description"`
	DefaultRate decimal.Decimal `json:"default_rate"`
}

type UpdateInvestigationRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description"`
	DefaultRate decimal.Decimal `json:"default_rate"`
}

// Response DTOs

type InvestigationResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DefaultRate decimal.Decimal `json:"default_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
