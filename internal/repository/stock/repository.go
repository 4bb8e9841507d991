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

var levelColumns = []string{
	"id", "company_id", "product_id", "location",
	"on_hand", "soft_reserved", "hard_reserved", "updated_at",
}

type repository struct {
	db *db.Client
	sb sq.StatementBuilderType
}

func NewStockRepository(client *db.Client) *repository {
	return &repository{
		db: client,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) scanLevel(row pgx.Row) (*model.StockLevel, error) {
	var lvl model.StockLevel
	err := row.Scan(
		&lvl.ID,
		&lvl.CompanyID,
		&lvl.ProductID,
		&lvl.Location,
		&lvl.OnHand,
		&lvl.SoftReserved,
		&lvl.HardReserved,
		&lvl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &lvl, nil
}

// EnsureLevel creates a zero-quantity level row if none exists yet, so
// counter updates always have a row to lock.
func (r *repository) EnsureLevel(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
) error {
	q := r.sb.
		Insert("stock_levels").
		Columns("company_id", "product_id", "location").
		Values(companyID, productID, location).
		Suffix("ON CONFLICT (company_id, product_id, location) DO NOTHING")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.DB(ctx).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) Level(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
) (*model.StockLevel, error) {
	return r.level(ctx, companyID, productID, location, false)
}

// LevelForUpdate locks the (product, location) row for the rest of the
// ambient transaction. It is the serialization point for all stock writes.
func (r *repository) LevelForUpdate(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
) (*model.StockLevel, error) {
	return r.level(ctx, companyID, productID, location, true)
}

func (r *repository) level(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
	forUpdate bool,
) (*model.StockLevel, error) {
	q := r.sb.
		Select(levelColumns...).
		From("stock_levels").
		Where(sq.Eq{
			"company_id": companyID,
			"product_id": productID,
			"location":   location,
		})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanLevel(r.db.DB(ctx).QueryRow(ctx, sqlStr, args...))
}

func (r *repository) Levels(
	ctx context.Context,
	companyID uuid.UUID,
	productIDs []uuid.UUID,
) ([]model.StockLevel, error) {
	q := r.sb.
		Select(levelColumns...).
		From("stock_levels").
		Where(sq.Eq{
			"company_id": companyID,
			"product_id": productIDs,
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

	var out []model.StockLevel
	for rows.Next() {
		lvl, err := r.scanLevel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *lvl)
	}
	return out, rows.Err()
}

// SetOnHand writes an absolute on-hand balance. Callers must hold the row
// lock (LevelForUpdate) in the same transaction.
func (r *repository) SetOnHand(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
	onHand int64,
) error {
	return r.update(ctx, companyID, productID, location, sq.Eq{"on_hand": onHand})
}

// AddSoftReserved applies a relative delta to the soft counter. The
// relative form makes concurrent writers serialize on the row lock.
func (r *repository) AddSoftReserved(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
	delta int64,
) error {
	return r.add(ctx, companyID, productID, location, "soft_reserved", delta)
}

func (r *repository) AddHardReserved(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
	delta int64,
) error {
	return r.add(ctx, companyID, productID, location, "hard_reserved", delta)
}

func (r *repository) add(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
	column string,
	delta int64,
) error {
	return r.update(ctx, companyID, productID, location,
		sq.Eq{column: sq.Expr(column+" + ?", delta)})
}

func (r *repository) update(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
	set sq.Eq,
) error {
	set["updated_at"] = sq.Expr("now()")

	q := r.sb.
		Update("stock_levels").
		SetMap(set).
		Where(sq.Eq{
			"company_id": companyID,
			"product_id": productID,
			"location":   location,
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
		return model.ErrNotFound
	}
	return nil
}

// InsertMovement appends one ledger row. The ledger is append-only; there
// are no update or delete paths.
func (r *repository) InsertMovement(ctx context.Context, m *model.StockMovement) (uuid.UUID, error) {
	q := r.sb.
		Insert("stock_movements").
		Columns(
			"company_id", "product_id", "location", "movement_type",
			"quantity", "balance_after", "reference_type", "reference_id", "actor_id",
		).
		Values(
			m.CompanyID, m.ProductID, m.Location, m.Type,
			m.Quantity, m.BalanceAfter, m.Reference.Kind, m.Reference.ID, m.ActorID,
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

func (r *repository) MovementsByReference(
	ctx context.Context,
	companyID uuid.UUID,
	ref model.Ref,
) ([]model.StockMovement, error) {
	q := r.sb.
		Select(
			"id", "company_id", "product_id", "location", "movement_type",
			"quantity", "balance_after", "reference_type", "reference_id",
			"actor_id", "created_at",
		).
		From("stock_movements").
		Where(sq.Eq{
			"company_id":     companyID,
			"reference_type": ref.Kind,
			"reference_id":   ref.ID,
		}).
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

	var out []model.StockMovement
	for rows.Next() {
		var m model.StockMovement
		if err := rows.Scan(
			&m.ID, &m.CompanyID, &m.ProductID, &m.Location, &m.Type,
			&m.Quantity, &m.BalanceAfter, &m.Reference.Kind, &m.Reference.ID,
			&m.ActorID, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
