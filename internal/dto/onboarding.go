package dto

import (
	"time"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CompanyDetails carries the mandatory company fields of an onboarding request.
type CompanyDetails struct {
	Name               string `json:"name" binding:"required"`
	Type               string `json:"type" binding:"required,oneof=SOLE_PROPRIETOR PARTNERSHIP LLC CORPORATION"`
	RegistrationNumber string `json:"registrationNumber"`
	TaxNumber          string `json:"taxNumber"`
}

// OpeningBalanceDetails carries the optional opening balance of an
// onboarding request.
type OpeningBalanceDetails struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// TaxInfoDetails carries the optional tax registration of an onboarding request.
type TaxInfoDetails struct {
	TaxID            string `json:"taxID"`
	BusinessName     string `json:"businessName"`
	BusinessActivity string `json:"businessActivity"`
}

// CompleteOnboardingRequest is the immutable input of one onboarding run.
type CompleteOnboardingRequest struct {
	Company            CompanyDetails         `json:"company" binding:"required"`
	OpeningBalance     *OpeningBalanceDetails `json:"openingBalance,omitempty"`
	TaxInfo            *TaxInfoDetails        `json:"taxInfo,omitempty"`
	SkipOpeningBalance bool                   `json:"skipOpeningBalance"`
	SkipTaxInfo        bool                   `json:"skipTaxInfo"`
}

// HasOpeningBalance reports whether the request asks for an opening balance:
// not skipped and both amount and date supplied.
func (r CompleteOnboardingRequest) HasOpeningBalance() bool {
	return !r.SkipOpeningBalance &&
		r.OpeningBalance != nil &&
		!r.OpeningBalance.Amount.IsZero() &&
		!r.OpeningBalance.Date.IsZero()
}

// HasTaxInfo reports whether the request asks for a tax profile: not skipped
// and both a tax identifier and business name supplied.
func (r CompleteOnboardingRequest) HasTaxInfo() bool {
	return !r.SkipTaxInfo &&
		r.TaxInfo != nil &&
		r.TaxInfo.TaxID != "" &&
		r.TaxInfo.BusinessName != ""
}

// OnboardingResponse is returned to the UI after a successful run.
type OnboardingResponse struct {
	CompanyID             string `json:"companyID"`
	AccountsCreated       int    `json:"accountsCreated"`
	OpeningBalanceCreated bool   `json:"openingBalanceCreated"`
	JournalID             string `json:"journalID,omitempty"`
	TaxProfileCreated     bool   `json:"taxProfileCreated"`
	TaxProfileSkipReason  string `json:"taxProfileSkipReason,omitempty"`
	ProgressRecordsCount  int    `json:"progressRecordsCount"`
}

// ToOnboardingResponse converts a domain result to the response DTO.
func ToOnboardingResponse(r *domain.OnboardingResult) OnboardingResponse {
	return OnboardingResponse{
		CompanyID:             r.CompanyID,
		AccountsCreated:       r.AccountsCreated,
		OpeningBalanceCreated: r.OpeningBalanceCreated,
		JournalID:             r.JournalID,
		TaxProfileCreated:     r.TaxProfileCreated,
		TaxProfileSkipReason:  r.TaxProfileSkipReason,
		ProgressRecordsCount:  r.ProgressRecordsCount,
	}
}
