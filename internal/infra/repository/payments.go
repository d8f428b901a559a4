package repository

import (
	"context"

	"booking-platform/internal/domain/invoice"
	"booking-platform/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create persists the attempt regardless of its status; payments are the
// audit trail and are never updated.
func (r *PaymentRepository) Create(ctx context.Context, p *invoice.Payment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (id, invoice_id, method, amount_due, status)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.InvoiceID, p.Method, p.AmountDue, p.Status,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("invoice not found for payment", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}
