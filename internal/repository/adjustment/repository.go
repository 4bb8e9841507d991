package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
)

type repository struct {
	db *db.Client
	sb sq.StatementBuilderType
}

func NewAdjustmentRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, adj *model.StockAdjustment) (uuid.UUID, error) {
	q := r.sb.
		Insert("stock_adjustments").
		Columns("company_id", "product_id", "location", "delta", "reason", "status", "created_by").
		Values(adj.CompanyID, adj.ProductID, adj.Location, adj.Delta, adj.Reason, adj.Status, adj.CreatedBy).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := r.db.DB(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *repository) AdjustmentByID(ctx context.Context, companyID, id uuid.UUID) (*model.StockAdjustment, error) {
	q := r.sb.
		Select(
			"id", "company_id", "product_id", "location", "delta", "reason",
			"status", "created_by", "decided_by", "created_at", "decided_at",
		).
		From("stock_adjustments").
		Where(sq.Eq{"company_id": companyID, "id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var adj model.StockAdjustment
	err = r.db.DB(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&adj.ID, &adj.CompanyID, &adj.ProductID, &adj.Location, &adj.Delta, &adj.Reason,
		&adj.Status, &adj.CreatedBy, &adj.DecidedBy, &adj.CreatedAt, &adj.DecidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &adj, nil
}

// Decide resolves a pending adjustment. The PENDING guard means only the
// first decision wins; a second one reports conflict.
func (r *repository) Decide(
	ctx context.Context,
	companyID, id uuid.UUID,
	status model.AdjustmentStatus,
	decidedBy uuid.UUID,
) error {
	q := r.sb.
		Update("stock_adjustments").
		Set("status", status).
		Set("decided_by", decidedBy).
		Set("decided_at", sq.Expr("now()")).
		Where(sq.Eq{
			"company_id": companyID,
			"id":         id,
			"status":     model.AdjustmentPending,
		})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.DB(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrConflict
	}
	return nil
}
