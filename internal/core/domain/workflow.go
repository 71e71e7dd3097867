package domain

// WorkflowScenario is a compliance scenario defined per business activity.
// Mandatory scenarios get a progress record for every company that
// registers a tax profile under that activity.
type WorkflowScenario struct {
	ScenarioID       string `json:"scenarioID"`
	BusinessActivity string `json:"businessActivity"`
	Name             string `json:"name"`
	IsMandatory      bool   `json:"isMandatory"`
}

// ProgressStatus tracks how far a company has taken a workflow scenario.
type ProgressStatus string

const (
	ProgressPending   ProgressStatus = "PENDING"
	ProgressCompleted ProgressStatus = "COMPLETED"
)

// WorkflowProgress is a per-company tracking row for one mandatory scenario.
// It exists only when the company holds a tax profile.
type WorkflowProgress struct {
	ProgressID       string         `json:"progressID"` // Primary Key (UUID)
	CompanyID        string         `json:"companyID"`  // FK -> companies.company_id
	ScenarioID       string         `json:"scenarioID"` // FK -> workflow_scenarios.scenario_id
	BusinessActivity string         `json:"businessActivity"`
	Status           ProgressStatus `json:"status"`
	AuditFields
}
