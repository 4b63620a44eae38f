package request

import (
	"strings"

	"ikhaya/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateLeaseRequest is the body of POST /v1/leases. The landlord is the
// authenticated caller.
type CreateLeaseRequest struct {
	PropertyID string          `json:"property_id"`
	TenantID   string          `json:"tenant_id"`
	RentAmount decimal.Decimal `json:"rent_amount" swaggertype:"string" example:"5000.00"`
	Deposit    decimal.Decimal `json:"deposit" swaggertype:"string" example:"5000.00"`
	StartDate  string          `json:"start_date" example:"2025-04-01"`
	EndDate    string          `json:"end_date" example:"2026-03-31"`
	Terms      string          `json:"terms"`
}

func (r CreateLeaseRequest) ToInput(landlordID string) (usecase.CreateLeaseInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return usecase.CreateLeaseInput{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return usecase.CreateLeaseInput{}, err
	}
	return usecase.CreateLeaseInput{
		LandlordID: landlordID,
		TenantID:   strings.TrimSpace(r.TenantID),
		PropertyID: strings.TrimSpace(r.PropertyID),
		RentAmount: r.RentAmount,
		Deposit:    r.Deposit,
		StartDate:  start,
		EndDate:    end,
		Terms:      r.Terms,
	}, nil
}

type SignLeaseRequest struct {
	Signature string `json:"signature"`
}
