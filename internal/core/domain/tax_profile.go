package domain

// TaxProfile holds a company's registration with the tax authority. The tax
// identifier is unique system-wide; two companies can never share one.
type TaxProfile struct {
	CompanyID        string `json:"companyID"` // Owning company (Primary Key)
	TaxID            string `json:"taxID"`     // Unique across all companies
	BusinessName     string `json:"businessName"`
	BusinessActivity string `json:"businessActivity"` // Activity reference code
	AuditFields
}
