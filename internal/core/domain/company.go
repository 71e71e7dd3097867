package domain

// CompanyType classifies the legal form of a company.
type CompanyType string

const (
	SoleProprietor CompanyType = "SOLE_PROPRIETOR"
	Partnership    CompanyType = "PARTNERSHIP"
	LLC            CompanyType = "LLC"
	Corporation    CompanyType = "CORPORATION"
)

// Company is the tenant root; every record created during onboarding hangs
// off its CompanyID via a foreign key.
type Company struct {
	CompanyID          string      `json:"companyID"` // Primary Key (UUID)
	OwnerUserID        string      `json:"ownerUserID"`
	Name               string      `json:"name"`
	Type               CompanyType `json:"type"`
	RegistrationNumber string      `json:"registrationNumber,omitempty"` // Optional
	TaxNumber          string      `json:"taxNumber,omitempty"`          // Optional
	IsActive           bool        `json:"isActive"`
	AuditFields
}
