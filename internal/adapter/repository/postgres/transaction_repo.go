package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/anikdas/ledgerbook/internal/domain"
	"github.com/anikdas/ledgerbook/internal/infrastructure/metrics"
)

// TransactionRepository implements usecase.TransactionRepository on an
// append-only table. The seq column records append order, which is the
// order List returns.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewTransactionRepository creates a new TransactionRepository. The
// metrics argument may be nil.
func NewTransactionRepository(pool *pgxpool.Pool, m *metrics.Metrics) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		retrier: NewRetrier(),
		metrics: m,
	}
}

// Append inserts a single transaction.
func (r *TransactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, tx_date, particulars, debit, credit, party, account_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	err := r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			tx.ID,
			tx.Date,
			tx.Particulars,
			decimalToNumeric(tx.Debit),
			decimalToNumeric(tx.Credit),
			tx.Party,
			string(tx.AccountType),
		)
		return err
	})
	r.metrics.RecordDBQuery("append", err)

	return err
}

// AppendBatch inserts multiple transactions in one database transaction so
// a failed batch leaves nothing behind.
func (r *TransactionRepository) AppendBatch(ctx context.Context, txs []*domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, tx_date, particulars, debit, credit, party, account_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	err := r.retrier.Retry(ctx, func() error {
		dbTx, err := r.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer dbTx.Rollback(ctx)

		batch := &pgx.Batch{}
		for _, tx := range txs {
			batch.Queue(query,
				tx.ID,
				tx.Date,
				tx.Particulars,
				decimalToNumeric(tx.Debit),
				decimalToNumeric(tx.Credit),
				tx.Party,
				string(tx.AccountType),
			)
		}

		if err := dbTx.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}

		return dbTx.Commit(ctx)
	})
	r.metrics.RecordDBQuery("append_batch", err)

	return err
}

// List returns all transactions in append order.
func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT id, tx_date, particulars, debit, credit, party, account_type
		FROM transactions
		ORDER BY seq ASC
	`

	rows, err := r.pool.Query(ctx, query)
	r.metrics.RecordDBQuery("list", err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			tx            domain.Transaction
			debit, credit pgtype.Numeric
			accountType   string
		)
		if err := rows.Scan(
			&tx.ID,
			&tx.Date,
			&tx.Particulars,
			&debit,
			&credit,
			&tx.Party,
			&accountType,
		); err != nil {
			return nil, err
		}

		tx.Debit = numericToDecimal(debit)
		tx.Credit = numericToDecimal(credit)
		tx.AccountType = domain.AccountType(accountType)
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// Reset clears the transaction list. Append order restarts from scratch.
func (r *TransactionRepository) Reset(ctx context.Context) error {
	err := r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, `TRUNCATE transactions RESTART IDENTITY`)
		return err
	})
	r.metrics.RecordDBQuery("reset", err)

	return err
}

// Count returns the number of recorded transactions.
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	return count, err
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
