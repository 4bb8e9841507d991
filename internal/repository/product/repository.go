package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
)

type repository struct {
	db *db.Client
	sb sq.StatementBuilderType
}

func NewProductRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) ProductsByIDs(
	ctx context.Context,
	companyID uuid.UUID,
	ids []uuid.UUID,
) (map[uuid.UUID]model.Product, error) {
	q := r.sb.
		Select("id", "company_id", "sku", "name", "product_type").
		From("products").
		Where(sq.Eq{"company_id": companyID, "id": ids})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]model.Product, len(ids))
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Type); err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}
