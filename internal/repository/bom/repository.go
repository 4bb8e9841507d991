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

func NewBomRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) ItemsByParent(
	ctx context.Context,
	companyID, parentProductID uuid.UUID,
) ([]model.BomItem, error) {
	q := r.sb.
		Select(
			"id", "company_id", "parent_product_id", "component_product_id",
			"quantity_per_unit", "is_optional",
		).
		From("bom_items").
		Where(sq.Eq{
			"company_id":        companyID,
			"parent_product_id": parentProductID,
		})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BomItem
	for rows.Next() {
		var item model.BomItem
		if err := rows.Scan(
			&item.ID, &item.CompanyID, &item.ParentProductID, &item.ComponentProductID,
			&item.QuantityPerUnit, &item.IsOptional,
		); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// InsertJobCardLines writes the immutable BOM snapshot for a job card.
func (r *repository) InsertJobCardLines(ctx context.Context, lines []model.JobCardBomLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.sb.
		Insert("job_card_bom_lines").
		Columns("job_card_id", "component_product_id", "quantity_per_unit", "total_required", "is_optional")
	for _, l := range lines {
		q = q.Values(l.JobCardID, l.ComponentProductID, l.QuantityPerUnit, l.TotalRequired, l.IsOptional)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.DB(ctx).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) JobCardLines(ctx context.Context, jobCardID uuid.UUID) ([]model.JobCardBomLine, error) {
	q := r.sb.
		Select("id", "job_card_id", "component_product_id", "quantity_per_unit", "total_required", "is_optional").
		From("job_card_bom_lines").
		Where(sq.Eq{"job_card_id": jobCardID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.JobCardBomLine
	for rows.Next() {
		var l model.JobCardBomLine
		if err := rows.Scan(
			&l.ID, &l.JobCardID, &l.ComponentProductID,
			&l.QuantityPerUnit, &l.TotalRequired, &l.IsOptional,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
