package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
)

var reservationColumns = []string{
	"id", "company_id", "product_id", "location", "reservation_type", "quantity",
	"reference_type", "reference_id", "expires_at",
	"created_by", "created_at", "released_at", "released_by", "release_reason",
}

type repository struct {
	db *db.Client
	sb sq.StatementBuilderType
}

func NewReservationRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, res *model.StockReservation) (uuid.UUID, error) {
	q := r.sb.
		Insert("stock_reservations").
		Columns(
			"company_id", "product_id", "location", "reservation_type", "quantity",
			"reference_type", "reference_id", "expires_at", "created_by",
		).
		Values(
			res.CompanyID, res.ProductID, res.Location, res.Type, res.Quantity,
			res.Reference.Kind, res.Reference.ID, res.ExpiresAt, res.CreatedBy,
		).
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

// ReleaseByReference marks every un-released reservation for the reference
// released and returns the released rows so the caller can decrement
// counters. Rows already released are skipped, which makes release
// idempotent.
func (r *repository) ReleaseByReference(
	ctx context.Context,
	companyID uuid.UUID,
	ref model.Ref,
	reason model.ReleaseReason,
	actorID uuid.UUID,
) ([]model.StockReservation, error) {
	q := r.sb.
		Update("stock_reservations").
		Set("released_at", sq.Expr("now()")).
		Set("released_by", actorID).
		Set("release_reason", reason).
		Where(sq.Eq{
			"company_id":     companyID,
			"reference_type": ref.Kind,
			"reference_id":   ref.ID,
		}).
		Where("released_at IS NULL").
		Suffix("RETURNING " + columnsList())

	return r.queryReservations(ctx, q)
}

// ReleaseMatching releases only the un-released reservations for the
// reference that hold the given product at the given location. Picking
// slip completion uses it to consume the matching order reservation
// without touching the order's other lines.
func (r *repository) ReleaseMatching(
	ctx context.Context,
	companyID uuid.UUID,
	ref model.Ref,
	productID uuid.UUID,
	location model.Location,
	reason model.ReleaseReason,
	actorID uuid.UUID,
) ([]model.StockReservation, error) {
	q := r.sb.
		Update("stock_reservations").
		Set("released_at", sq.Expr("now()")).
		Set("released_by", actorID).
		Set("release_reason", reason).
		Where(sq.Eq{
			"company_id":     companyID,
			"reference_type": ref.Kind,
			"reference_id":   ref.ID,
			"product_id":     productID,
			"location":       location,
		}).
		Where("released_at IS NULL").
		Suffix("RETURNING " + columnsList())

	return r.queryReservations(ctx, q)
}

// ReleaseByIDs releases a sweep page. The released_at guard keeps a
// repeated sweep from double-decrementing counters.
func (r *repository) ReleaseByIDs(
	ctx context.Context,
	ids []uuid.UUID,
	reason model.ReleaseReason,
	actorID uuid.UUID,
) ([]model.StockReservation, error) {
	q := r.sb.
		Update("stock_reservations").
		Set("released_at", sq.Expr("now()")).
		Set("released_by", actorID).
		Set("release_reason", reason).
		Where(sq.Eq{"id": ids}).
		Where("released_at IS NULL").
		Suffix("RETURNING " + columnsList())

	return r.queryReservations(ctx, q)
}

func (r *repository) ActiveByReference(
	ctx context.Context,
	companyID uuid.UUID,
	ref model.Ref,
) ([]model.StockReservation, error) {
	q := r.sb.
		Select(reservationColumns...).
		From("stock_reservations").
		Where(sq.Eq{
			"company_id":     companyID,
			"reference_type": ref.Kind,
			"reference_id":   ref.ID,
		}).
		Where("released_at IS NULL")

	return r.selectReservations(ctx, q)
}

// ExpiredSoftPage locks one page of expired SOFT reservations for the
// sweep. SKIP LOCKED lets concurrent sweeps partition the backlog instead
// of blocking on each other.
func (r *repository) ExpiredSoftPage(
	ctx context.Context,
	cutoff time.Time,
	limit uint64,
) ([]model.StockReservation, error) {
	q := r.sb.
		Select(reservationColumns...).
		From("stock_reservations").
		Where(sq.Eq{"reservation_type": model.ReservationSoft}).
		Where("released_at IS NULL").
		Where(sq.LtOrEq{"expires_at": cutoff}).
		OrderBy("expires_at").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED")

	return r.selectReservations(ctx, q)
}

func columnsList() string {
	out := reservationColumns[0]
	for _, c := range reservationColumns[1:] {
		out += ", " + c
	}
	return out
}

func (r *repository) selectReservations(ctx context.Context, q sq.SelectBuilder) ([]model.StockReservation, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanAll(ctx, sqlStr, args)
}

func (r *repository) queryReservations(ctx context.Context, q sq.UpdateBuilder) ([]model.StockReservation, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanAll(ctx, sqlStr, args)
}

func (r *repository) scanAll(ctx context.Context, sqlStr string, args []any) ([]model.StockReservation, error) {
	rows, err := r.db.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StockReservation
	for rows.Next() {
		var res model.StockReservation
		if err := rows.Scan(
			&res.ID, &res.CompanyID, &res.ProductID, &res.Location, &res.Type, &res.Quantity,
			&res.Reference.Kind, &res.Reference.ID, &res.ExpiresAt,
			&res.CreatedBy, &res.CreatedAt, &res.ReleasedAt, &res.ReleasedBy, &res.ReleaseReason,
		); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
