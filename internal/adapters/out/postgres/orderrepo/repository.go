package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Every call borrows a pooled connection for its duration only.
type GormOrderRepository struct {
	db     *gorm.DB
	logger ports.Logger
}

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, logger ports.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:     db,
		logger: logger.With("component", "postgres_order_repository"),
	}
}

// Save inserts a single order row. Failures are logged and reported as false.
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) bool {
	if err := o.Validate(); err != nil {
		r.logger.Error("refusing to save invalid order", err)
		return false
	}

	dto := fromDomain(o)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		r.logger.Error("failed to save order", err, append([]any{"order_id", dto.ID}, pgErrorFields(err)...)...)
		return false
	}

	r.logger.Info("order saved", "order_id", dto.ID)
	return true
}

// ListAll selects every order ordered by id.
func (r *GormOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		r.logger.Error("failed to retrieve orders", err, pgErrorFields(err)...)
		return make([]*order.Order, 0), errs.NewPersistenceError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			r.logger.Error("failed to retrieve orders", err, "order_id", dto.ID)
			return make([]*order.Order, 0), errs.NewPersistenceError("list orders", err)
		}
		orders = append(orders, o)
	}

	r.logger.Info("retrieved orders", "count", len(orders))
	return orders, nil
}

// pgErrorFields extracts the SQLSTATE details of a PostgreSQL error as log
// fields. Non-PostgreSQL errors yield no fields.
func pgErrorFields(err error) []any {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	return []any{
		"sqlstate", pgErr.Code,
		"pg_class", sqlStateClass(pgErr.Code),
		"constraint", pgErr.ConstraintName,
	}
}

// sqlStateClass names the SQLSTATE classes an operator is likely to act on.
func sqlStateClass(code string) string {
	switch {
	case code == "23505":
		return "unique_violation"
	case code == "42P01":
		return "undefined_table"
	case len(code) >= 2 && code[:2] == "08":
		return "connection_exception"
	case len(code) >= 2 && code[:2] == "23":
		return "integrity_constraint_violation"
	case len(code) >= 2 && code[:2] == "53":
		return "insufficient_resources"
	default:
		return "other"
	}
}
