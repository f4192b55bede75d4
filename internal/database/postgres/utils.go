package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

// toBigint converts an unsigned amount to a BIGINT parameter.
// Amounts above domain.MaxAmount are rejected.
func toBigint(v uint64) (int64, error) {
	if v > domain.MaxAmount {
		return 0, fmt.Errorf("%w: %d exceeds storage range", domain.ErrAmountOverflow, v)
	}
	return int64(v), nil
}

// fromBigint converts a stored BIGINT back to an unsigned amount
func fromBigint(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// mapPgError translates constraint failures into domain errors
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeNumericOutOfRange:
			return fmt.Errorf("%w: %s", domain.ErrAmountOverflow, pgErr.Message)
		case PgErrorCodeCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrLedgerInconsistent, pgErr.ConstraintName)
		}
	}
	return err
}
