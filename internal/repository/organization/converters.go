package organization

import "shipment-service/internal/entities"

func ToDomain(o *OrganizationDB) *entities.Organization {
	if o == nil {
		return nil
	}

	return &entities.Organization{
		ID:        o.ID,
		Code:      o.Code,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func ToDomainList(organizationsDB []OrganizationDB) []entities.Organization {
	result := make([]entities.Organization, len(organizationsDB))
	for i := range organizationsDB {
		result[i] = *ToDomain(&organizationsDB[i])
	}
	return result
}
