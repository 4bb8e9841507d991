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

var jobCardColumns = []string{
	"id", "company_id", "order_id", "order_line_id", "product_id", "quantity",
	"status", "warnings", "created_at", "started_at", "completed_at",
}

type repository struct {
	db *db.Client
	sb sq.StatementBuilderType
}

func NewJobCardRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, jc *model.JobCard) (uuid.UUID, error) {
	q := r.sb.
		Insert("job_cards").
		Columns("company_id", "order_id", "order_line_id", "product_id", "quantity", "status").
		Values(jc.CompanyID, jc.OrderID, jc.OrderLineID, jc.ProductID, jc.Quantity, jc.Status).
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

func (r *repository) JobCardByID(ctx context.Context, companyID, id uuid.UUID) (*model.JobCard, error) {
	q := r.sb.
		Select(jobCardColumns...).
		From("job_cards").
		Where(sq.Eq{"company_id": companyID, "id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	jc, err := r.scan(r.db.DB(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return jc, nil
}

func (r *repository) ByOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]model.JobCard, error) {
	q := r.sb.
		Select(jobCardColumns...).
		From("job_cards").
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

	var out []model.JobCard
	for rows.Next() {
		jc, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *jc)
	}
	return out, rows.Err()
}

func (r *repository) scan(row pgx.Row) (*model.JobCard, error) {
	var jc model.JobCard
	err := row.Scan(
		&jc.ID, &jc.CompanyID, &jc.OrderID, &jc.OrderLineID, &jc.ProductID, &jc.Quantity,
		&jc.Status, &jc.Warnings, &jc.CreatedAt, &jc.StartedAt, &jc.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &jc, nil
}

func (r *repository) SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.JobCardStatus) error {
	set := sq.Eq{"status": status}
	switch status {
	case model.JobCardInProgress:
		set["started_at"] = sq.Expr("COALESCE(started_at, now())")
	case model.JobCardComplete:
		set["completed_at"] = sq.Expr("now()")
	}
	return r.update(ctx, companyID, id, set)
}

// AppendWarnings records non-blocking material warnings on the job card.
func (r *repository) AppendWarnings(ctx context.Context, companyID, id uuid.UUID, warnings []string) error {
	if len(warnings) == 0 {
		return nil
	}
	return r.update(ctx, companyID, id, sq.Eq{
		"warnings": sq.Expr("warnings || ?", warnings),
	})
}

func (r *repository) update(ctx context.Context, companyID, id uuid.UUID, set sq.Eq) error {
	q := r.sb.
		Update("job_cards").
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
