package services

import (
	portsrepo "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/repositories"
	portssvc "github.com/codejunkiedev/betterbooks-sub003/internal/core/ports/services"
	"github.com/codejunkiedev/betterbooks-sub003/internal/platform/config"
)

// NewServiceContainer wires all application services with their
// dependencies. The event publisher may be nil when Kafka is not configured.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, publisher portssvc.OnboardingEventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Onboarding:  NewOnboardingService(repos, publisher),
		Company:     NewCompanyService(repos),
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthHandlerService(cfg),
	}
}
