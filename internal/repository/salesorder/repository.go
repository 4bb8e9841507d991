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

func NewSalesOrderRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) OrderByID(ctx context.Context, companyID, id uuid.UUID) (*model.SalesOrder, error) {
	return r.orderByID(ctx, companyID, id, false)
}

// OrderByIDForUpdate locks the order row so concurrent transitions on the
// same order serialize.
func (r *repository) OrderByIDForUpdate(ctx context.Context, companyID, id uuid.UUID) (*model.SalesOrder, error) {
	return r.orderByID(ctx, companyID, id, true)
}

func (r *repository) orderByID(
	ctx context.Context,
	companyID, id uuid.UUID,
	forUpdate bool,
) (*model.SalesOrder, error) {
	q := r.sb.
		Select(
			"id", "company_id", "order_number", "customer_id", "location",
			"status", "created_by", "created_at", "updated_at",
		).
		From("sales_orders").
		Where(sq.Eq{"company_id": companyID, "id": id})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var ord model.SalesOrder
	err = r.db.DB(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&ord.ID, &ord.CompanyID, &ord.OrderNumber, &ord.CustomerID, &ord.Location,
		&ord.Status, &ord.CreatedBy, &ord.CreatedAt, &ord.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &ord, nil
}

func (r *repository) Lines(ctx context.Context, orderID uuid.UUID) ([]model.SalesOrderLine, error) {
	q := r.sb.
		Select(
			"id", "order_id", "product_id",
			"quantity_ordered", "quantity_picked", "quantity_shipped", "unit_price",
		).
		From("sales_order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SalesOrderLine
	for rows.Next() {
		var l model.SalesOrderLine
		if err := rows.Scan(
			&l.ID, &l.OrderID, &l.ProductID,
			&l.QuantityOrdered, &l.QuantityPicked, &l.QuantityShipped, &l.UnitPrice,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// SetStatus moves the order only when it is still in the expected status;
// zero rows affected means a concurrent transition won.
func (r *repository) SetStatus(
	ctx context.Context,
	companyID, id uuid.UUID,
	from, to model.OrderStatus,
) error {
	q := r.sb.
		Update("sales_orders").
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"company_id": companyID, "id": id, "status": from})

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

func (r *repository) AddLinePicked(ctx context.Context, lineID uuid.UUID, delta int64) error {
	return r.addLineQuantity(ctx, lineID, "quantity_picked", delta)
}

func (r *repository) AddLineShipped(ctx context.Context, lineID uuid.UUID, delta int64) error {
	return r.addLineQuantity(ctx, lineID, "quantity_shipped", delta)
}

func (r *repository) addLineQuantity(ctx context.Context, lineID uuid.UUID, column string, delta int64) error {
	q := r.sb.
		Update("sales_order_lines").
		Set(column, sq.Expr(column+" + ?", delta)).
		Where(sq.Eq{"id": lineID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.DB(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
