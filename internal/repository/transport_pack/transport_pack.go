package transport_pack

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"shipment-service/internal/entities"
	"shipment-service/internal/repository"
)

const returningColumns = "RETURNING position, id, weight, unit, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ReplaceForShipment удаляет старые упаковки отправки и вставляет новые
// в переданном порядке. Вызывается внутри транзакции upsert отправки.
func (r *Repository) ReplaceForShipment(
	ctx context.Context,
	referenceID string,
	packs []entities.TransportPackModify,
) ([]entities.TransportPack, error) {
	_, err := r.querier.Exec(ctx,
		`DELETE FROM transport_packs WHERE shipment_reference_id = $1`,
		referenceID,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository delete error: %w", err)
	}

	if len(packs) == 0 {
		return []entities.TransportPack{}, nil
	}

	builder := repository.QB.
		Insert("transport_packs").
		Columns("id", "shipment_reference_id", "position", "weight", "unit").
		Suffix(returningColumns)
	for i, p := range packs {
		builder = builder.Values(uuid.NewString(), referenceID, i, p.Weight, p.Unit.String())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository insert error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository insert error: %w", err)
	}
	defer rows.Close()

	// порядок строк RETURNING не гарантирован, раскладываем по position
	packsDB := make([]TransportPackDB, len(packs))
	for rows.Next() {
		var position int
		var packDB TransportPackDB
		err := rows.Scan(
			&position,
			&packDB.ID,
			&packDB.Weight,
			&packDB.Unit,
			&packDB.CreatedAt,
			&packDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected transport pack repository insert error: %w", err)
		}
		if position < 0 || position >= len(packsDB) {
			return nil, fmt.Errorf("unexpected transport pack position %d", position)
		}
		packsDB[position] = packDB
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository insert error: %w", err)
	}

	return ToDomainList(packsDB), nil
}

// GetByShipment упаковки отправки в исходном порядке.
func (r *Repository) GetByShipment(ctx context.Context, referenceID string) ([]entities.TransportPack, error) {
	query, args, err := repository.QB.
		Select("id", "weight", "unit", "created_at", "updated_at").
		From("transport_packs").
		Where(sq.Eq{"shipment_reference_id": referenceID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository getbyshipment error: %w", err)
	}

	packsDB, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository getbyshipment error: %w", err)
	}
	return ToDomainList(packsDB), nil
}

// SumWeightByUnit сумма весов всех упаковок, сгруппированная по единице хранения.
func (r *Repository) SumWeightByUnit(ctx context.Context) ([]entities.UnitWeight, error) {
	query, args, err := repository.QB.
		Select("unit", "SUM(weight)").
		From("transport_packs").
		GroupBy("unit").
		OrderBy("unit").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository sum error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository sum error: %w", err)
	}
	defer rows.Close()

	sums := make([]UnitWeightDB, 0, 3)
	for rows.Next() {
		var sum UnitWeightDB
		err := rows.Scan(&sum.Unit, &sum.Weight)
		if err != nil {
			return nil, fmt.Errorf("unexpected transport pack repository sum error: %w", err)
		}
		sums = append(sums, sum)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport pack repository sum error: %w", err)
	}

	return ToDomainUnitWeights(sums), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]TransportPackDB, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packsDB := make([]TransportPackDB, 0, 4)
	for rows.Next() {
		var packDB TransportPackDB
		err := rows.Scan(
			&packDB.ID,
			&packDB.Weight,
			&packDB.Unit,
			&packDB.CreatedAt,
			&packDB.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		packsDB = append(packsDB, packDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return packsDB, nil
}
