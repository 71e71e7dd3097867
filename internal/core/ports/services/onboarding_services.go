package services

import (
	"context"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/domain"
	"github.com/codejunkiedev/betterbooks-sub003/internal/dto"
)

// OnboardingSvcFacade runs the company onboarding pipeline.
type OnboardingSvcFacade interface {
	// CompleteOnboarding validates the request and executes the onboarding
	// saga: company, chart of accounts, optional opening balance, optional
	// tax profile, workflow progress. The run ends either fully applied or
	// fully rolled back; the returned result reports which optional
	// resources were created.
	CompleteOnboarding(ctx context.Context, req dto.CompleteOnboardingRequest, requesterUserID string) (*domain.OnboardingResult, error)
}

// OnboardingEventPublisher publishes onboarding lifecycle events to
// downstream consumers. Publishing is fire-and-forget; implementations must
// never block the caller or surface failures to it.
type OnboardingEventPublisher interface {
	PublishCompanyOnboarded(company domain.Company)
}
