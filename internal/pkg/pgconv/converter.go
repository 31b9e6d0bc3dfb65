package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var ErrInvalidNumericValue = errors.New("invalid numeric value in pgtype.Numeric")

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// DecimalFromNumeric converts a scanned numeric column without a float64
// round trip; credit rates stay exact.
func DecimalFromNumeric(pn pgtype.Numeric) (decimal.Decimal, error) {
	if !pn.Valid || pn.NaN || pn.Int == nil {
		return decimal.Decimal{}, ErrInvalidNumericValue
	}
	return decimal.NewFromBigInt(pn.Int, pn.Exp), nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
