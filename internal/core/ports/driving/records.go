package driving

import (
	"context"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// Records is the driving port for the transport-service record views.
// Every method returns fully mapped and sorted domain records.
type Records interface {
	// DayServices returns the short services whose pickup date is today.
	DayServices(ctx context.Context) ([]domain.Service, error)

	// UpcomingServices returns the short services from tomorrow onward.
	UpcomingServices(ctx context.Context) ([]domain.Service, error)

	// ServicesCreatedToday returns the short services created today.
	ServicesCreatedToday(ctx context.Context) ([]domain.Service, error)

	// AllServiceDetails returns every long-form service, sorted.
	AllServiceDetails(ctx context.Context) ([]domain.ServiceDetail, error)

	// ServiceDetail returns the long-form service with the given ID.
	ServiceDetail(ctx context.Context, id int) (domain.ServiceDetail, error)

	// CardsTodo returns the membership cards still to be produced.
	CardsTodo(ctx context.Context) ([]domain.Card, error)

	// Members returns all registered members.
	Members(ctx context.Context) ([]domain.Member, error)

	// UpdateService merges logical field values into one service item.
	UpdateService(ctx context.Context, id int, fields map[string]string) error
}
