package dto

import (
	"time"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
)

// ActivityLogResponse defines data returned for one audit record.
type ActivityLogResponse struct {
	ActivityID  string    `json:"activityID"`
	ActorUserID string    `json:"actorUserID"`
	Action      string    `json:"action"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToActivityLogResponse converts domain.ActivityLog to DTO.
func ToActivityLogResponse(e *domain.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		ActivityID:  e.ActivityID,
		ActorUserID: e.ActorUserID,
		Action:      string(e.Action),
		Details:     e.Details,
		CreatedAt:   e.CreatedAt,
	}
}

// ListActivitiesResponse wraps one page of a company's audit trail. An empty
// NextToken means the page reached the end of the log.
type ListActivitiesResponse struct {
	Activities []ActivityLogResponse `json:"activities"`
	NextToken  string                `json:"nextToken,omitempty"`
}
