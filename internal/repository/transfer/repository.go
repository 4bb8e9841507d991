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

var transferColumns = []string{
	"id", "company_id", "order_id", "from_location", "to_location",
	"status", "created_at", "shipped_at", "received_at",
}

type repository struct {
	db *db.Client
	sb sq.StatementBuilderType
}

func NewTransferRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, tr *model.TransferRequest) (uuid.UUID, error) {
	q := r.sb.
		Insert("transfer_requests").
		Columns("company_id", "order_id", "from_location", "to_location", "status").
		Values(tr.CompanyID, tr.OrderID, tr.FromLocation, tr.ToLocation, tr.Status).
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

func (r *repository) CreateLines(ctx context.Context, lines []model.TransferLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.sb.
		Insert("transfer_lines").
		Columns("transfer_id", "product_id", "quantity_requested")
	for _, l := range lines {
		q = q.Values(l.TransferID, l.ProductID, l.QuantityRequested)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.DB(ctx).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) TransferByID(ctx context.Context, companyID, id uuid.UUID) (*model.TransferRequest, error) {
	q := r.sb.
		Select(transferColumns...).
		From("transfer_requests").
		Where(sq.Eq{"company_id": companyID, "id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var tr model.TransferRequest
	err = r.db.DB(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&tr.ID, &tr.CompanyID, &tr.OrderID, &tr.FromLocation, &tr.ToLocation,
		&tr.Status, &tr.CreatedAt, &tr.ShippedAt, &tr.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &tr, nil
}

func (r *repository) ByOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]model.TransferRequest, error) {
	q := r.sb.
		Select(transferColumns...).
		From("transfer_requests").
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

	var out []model.TransferRequest
	for rows.Next() {
		var tr model.TransferRequest
		if err := rows.Scan(
			&tr.ID, &tr.CompanyID, &tr.OrderID, &tr.FromLocation, &tr.ToLocation,
			&tr.Status, &tr.CreatedAt, &tr.ShippedAt, &tr.ReceivedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

func (r *repository) Lines(ctx context.Context, transferID uuid.UUID) ([]model.TransferLine, error) {
	q := r.sb.
		Select("id", "transfer_id", "product_id", "quantity_requested", "quantity_received").
		From("transfer_lines").
		Where(sq.Eq{"transfer_id": transferID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TransferLine
	for rows.Next() {
		var l model.TransferLine
		if err := rows.Scan(
			&l.ID, &l.TransferID, &l.ProductID, &l.QuantityRequested, &l.QuantityReceived,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *repository) SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.TransferStatus) error {
	set := sq.Eq{"status": status}
	switch status {
	case model.TransferInTransit:
		set["shipped_at"] = sq.Expr("now()")
	case model.TransferReceived:
		set["received_at"] = sq.Expr("now()")
	}

	q := r.sb.
		Update("transfer_requests").
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

func (r *repository) SetLineReceived(ctx context.Context, transferID, lineID uuid.UUID, quantity int64) error {
	q := r.sb.
		Update("transfer_lines").
		Set("quantity_received", quantity).
		Where(sq.Eq{"id": lineID, "transfer_id": transferID})

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
