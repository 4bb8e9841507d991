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

func NewPickingSlipRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, slip *model.PickingSlip) (uuid.UUID, error) {
	q := r.sb.
		Insert("picking_slips").
		Columns("company_id", "order_id", "location", "status").
		Values(slip.CompanyID, slip.OrderID, slip.Location, slip.Status).
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

func (r *repository) CreateLines(ctx context.Context, lines []model.PickingSlipLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.sb.
		Insert("picking_slip_lines").
		Columns("picking_slip_id", "order_line_id", "product_id", "quantity_required", "quantity_picked")
	for _, l := range lines {
		q = q.Values(l.PickingSlipID, l.OrderLineID, l.ProductID, l.QuantityRequired, l.QuantityPicked)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.DB(ctx).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) SlipByID(ctx context.Context, companyID, id uuid.UUID) (*model.PickingSlip, error) {
	q := r.sb.
		Select("id", "company_id", "order_id", "location", "status", "assigned_to", "created_at", "updated_at").
		From("picking_slips").
		Where(sq.Eq{"company_id": companyID, "id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var s model.PickingSlip
	err = r.db.DB(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&s.ID, &s.CompanyID, &s.OrderID, &s.Location, &s.Status,
		&s.AssignedTo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) ByOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]model.PickingSlip, error) {
	q := r.sb.
		Select("id", "company_id", "order_id", "location", "status", "assigned_to", "created_at", "updated_at").
		From("picking_slips").
		Where(sq.Eq{"company_id": companyID, "order_id": orderID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PickingSlip
	for rows.Next() {
		var s model.PickingSlip
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.OrderID, &s.Location, &s.Status,
			&s.AssignedTo, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repository) Lines(ctx context.Context, slipID uuid.UUID) ([]model.PickingSlipLine, error) {
	q := r.sb.
		Select("id", "picking_slip_id", "order_line_id", "product_id", "quantity_required", "quantity_picked").
		From("picking_slip_lines").
		Where(sq.Eq{"picking_slip_id": slipID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PickingSlipLine
	for rows.Next() {
		var l model.PickingSlipLine
		if err := rows.Scan(
			&l.ID, &l.PickingSlipID, &l.OrderLineID, &l.ProductID,
			&l.QuantityRequired, &l.QuantityPicked,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *repository) SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.PickingSlipStatus) error {
	return r.update(ctx, companyID, id, sq.Eq{"status": status})
}

func (r *repository) SetAssignee(ctx context.Context, companyID, id, userID uuid.UUID) error {
	return r.update(ctx, companyID, id, sq.Eq{"assigned_to": userID})
}

func (r *repository) update(ctx context.Context, companyID, id uuid.UUID, set sq.Eq) error {
	set["updated_at"] = sq.Expr("now()")

	q := r.sb.
		Update("picking_slips").
		SetMap(set).
		Where(sq.Eq{"company_id": companyID, "id": id})

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

func (r *repository) SetLinePicked(ctx context.Context, slipID, lineID uuid.UUID, quantity int64) error {
	q := r.sb.
		Update("picking_slip_lines").
		Set("quantity_picked", quantity).
		Where(sq.Eq{"id": lineID, "picking_slip_id": slipID})

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
