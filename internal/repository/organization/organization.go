package organization

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipment-service/internal/entities"
	"shipment-service/internal/repository"
	"shipment-service/internal/service/organization"
)

var columns = []string{"o.id", "o.code", "o.created_at", "o.updated_at"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert создает организацию или обновляет код существующей с тем же id.
func (r *Repository) Upsert(ctx context.Context, organizationModify entities.OrganizationModify) (*entities.Organization, error) {
	query := `INSERT INTO organizations (id, code)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET code = EXCLUDED.code, updated_at = NOW()
		RETURNING id, code, created_at, updated_at`

	var organizationModel OrganizationDB
	err := r.querier.QueryRow(ctx, query, organizationModify.ID, organizationModify.Code).
		Scan(
			&organizationModel.ID,
			&organizationModel.Code,
			&organizationModel.CreatedAt,
			&organizationModel.UpdatedAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected organization repository upsert error: %w", err)
	}

	return ToDomain(&organizationModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Organization, error) {
	query := `SELECT id, code, created_at, updated_at
		FROM organizations
		WHERE id = $1`

	var organizationModel OrganizationDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&organizationModel.ID,
			&organizationModel.Code,
			&organizationModel.CreatedAt,
			&organizationModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, organization.ErrOrganizationNotFound
		}

		return nil, fmt.Errorf("unexpected organization repository getbyid error: %w", err)
	}

	return ToDomain(&organizationModel), nil
}

// GetByCodes все организации с любым из кодов. Коды без совпадений
// просто не попадают в результат.
func (r *Repository) GetByCodes(ctx context.Context, codes []string) ([]entities.Organization, error) {
	if len(codes) == 0 {
		return []entities.Organization{}, nil
	}

	query, args, err := repository.QB.
		Select(columns...).
		From("organizations o").
		Where(sq.Eq{"o.code": codes}).
		OrderBy("o.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected organization repository getbycodes error: %w", err)
	}

	organizations, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected organization repository getbycodes error: %w", err)
	}
	return organizations, nil
}

// GetByShipment организации, привязанные к отправке, по возрастанию id.
func (r *Repository) GetByShipment(ctx context.Context, referenceID string) ([]entities.Organization, error) {
	query, args, err := repository.QB.
		Select(columns...).
		From("organizations o").
		Join("shipment_organizations so ON so.organization_id = o.id").
		Where(sq.Eq{"so.shipment_reference_id": referenceID}).
		OrderBy("o.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected organization repository getbyshipment error: %w", err)
	}

	organizations, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected organization repository getbyshipment error: %w", err)
	}
	return organizations, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]entities.Organization, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	organizationModels := make([]OrganizationDB, 0, 4)
	for rows.Next() {
		var organizationModel OrganizationDB
		err := rows.Scan(
			&organizationModel.ID,
			&organizationModel.Code,
			&organizationModel.CreatedAt,
			&organizationModel.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		organizationModels = append(organizationModels, organizationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return ToDomainList(organizationModels), nil
}
