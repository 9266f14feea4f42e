package organization

import (
	"context"
	"fmt"

	"shipment-service/internal/entities"
)

type Organization struct {
	repository Repository
}

func New(repository Repository) *Organization {
	return &Organization{
		repository: repository,
	}
}

// UpsertOrganization создает организацию или меняет код существующей.
// id проверяется раньше code.
func (s *Organization) UpsertOrganization(ctx context.Context, organizationModify entities.OrganizationModify) (*entities.Organization, error) {
	if !isPresent(organizationModify.ID) {
		return nil, ErrMissingID
	}
	if !isPresent(organizationModify.Code) {
		return nil, ErrMissingCode
	}

	organization, err := s.repository.Upsert(ctx, organizationModify)
	if err != nil {
		return nil, fmt.Errorf("upsert organization: %w", err)
	}

	return organization, nil
}

func (s *Organization) GetOrganization(ctx context.Context, id string) (*entities.Organization, error) {
	organization, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return organization, nil
}
