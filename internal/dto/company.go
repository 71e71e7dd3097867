package dto

import (
	"time"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
)

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID          string    `json:"companyID"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	TaxNumber          string    `json:"taxNumber,omitempty"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:          c.CompanyID,
		Name:               c.Name,
		Type:               string(c.Type),
		RegistrationNumber: c.RegistrationNumber,
		TaxNumber:          c.TaxNumber,
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt,
	}
}

// ListCompaniesResponse wraps a list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of domain.Company to DTO.
func ToListCompaniesResponse(cs []domain.Company) ListCompaniesResponse {
	list := make([]CompanyResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCompanyResponse(&c)
	}
	return ListCompaniesResponse{Companies: list}
}

// CompanyOverviewResponse combines a company with a summary of the resources
// created for it during and after onboarding.
type CompanyOverviewResponse struct {
	Company          CompanyResponse `json:"company"`
	AccountCount     int             `json:"accountCount"`
	HasTaxProfile    bool            `json:"hasTaxProfile"`
	ProgressRecords  int             `json:"progressRecords"`
	BusinessActivity string          `json:"businessActivity,omitempty"`
	TaxID            string          `json:"taxID,omitempty"`
}
