package domain

import "time"

// ActivityAction names an auditable event.
type ActivityAction string

// ActionCompanyOnboarded is recorded after a successful onboarding run.
const ActionCompanyOnboarded ActivityAction = "COMPANY_ONBOARDED"

// ActivityLog is a best-effort audit record. Writes are fire-and-forget;
// a failed append never changes the outcome of the operation it describes.
type ActivityLog struct {
	ActivityID  string         `json:"activityID"` // Primary Key (UUID)
	CompanyID   string         `json:"companyID"`
	ActorUserID string         `json:"actorUserID"`
	Action      ActivityAction `json:"action"`
	Details     string         `json:"details"` // Free-form JSON payload
	CreatedAt   time.Time      `json:"createdAt"`
}
