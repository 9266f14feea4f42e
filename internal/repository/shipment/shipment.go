package shipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"shipment-service/internal/entities"
	"shipment-service/internal/repository"
	"shipment-service/internal/service/shipment"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert записывает строку отправки. Связи с организациями и упаковки
// пишутся отдельно, в той же транзакции.
func (r *Repository) Upsert(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	query := `INSERT INTO shipments (reference_id, estimated_time_arrival)
		VALUES ($1, $2)
		ON CONFLICT (reference_id) DO UPDATE
		SET estimated_time_arrival = EXCLUDED.estimated_time_arrival, updated_at = NOW()
		RETURNING reference_id, estimated_time_arrival, created_at, updated_at`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, shipmentModify.ReferenceID, shipmentModify.EstimatedTimeArrival).
		Scan(
			&shipmentModel.ReferenceID,
			&shipmentModel.EstimatedTimeArrival,
			&shipmentModel.CreatedAt,
			&shipmentModel.UpdatedAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository upsert error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByReferenceID(ctx context.Context, referenceID string) (*entities.Shipment, error) {
	query := `SELECT reference_id, estimated_time_arrival, created_at, updated_at
		FROM shipments
		WHERE reference_id = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, referenceID).
		Scan(
			&shipmentModel.ReferenceID,
			&shipmentModel.EstimatedTimeArrival,
			&shipmentModel.CreatedAt,
			&shipmentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbyreferenceid error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

// ReplaceOrganizations заменяет набор организаций отправки целиком.
func (r *Repository) ReplaceOrganizations(ctx context.Context, referenceID string, organizationIDs []string) error {
	_, err := r.querier.Exec(ctx,
		`DELETE FROM shipment_organizations WHERE shipment_reference_id = $1`,
		referenceID,
	)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository replace organizations error: %w", err)
	}

	if len(organizationIDs) == 0 {
		return nil
	}

	builder := repository.QB.
		Insert("shipment_organizations").
		Columns("shipment_reference_id", "organization_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, id := range organizationIDs {
		builder = builder.Values(referenceID, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository replace organizations error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return fmt.Errorf("%w: %w", shipment.ErrShipmentNotFound, err)
		}
		return fmt.Errorf("unexpected shipment repository replace organizations error: %w", err)
	}

	return nil
}
