package domain

// OnboardingResult summarizes a successful onboarding run so the caller can
// explain which optional resources were actually created.
type OnboardingResult struct {
	CompanyID             string `json:"companyID"`
	AccountsCreated       int    `json:"accountsCreated"`
	OpeningBalanceCreated bool   `json:"openingBalanceCreated"`
	JournalID             string `json:"journalID,omitempty"`
	TaxProfileCreated     bool   `json:"taxProfileCreated"`
	TaxProfileSkipReason  string `json:"taxProfileSkipReason,omitempty"`
	ProgressRecordsCount  int    `json:"progressRecordsCount"`
}
