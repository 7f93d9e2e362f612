package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Failure kinds. Every error returned by ProductRepository matches exactly one
// of these through errors.Is.
var (
	ErrNotFound           = errors.New("product not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrNoFields           = errors.New("no fields to update")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorage            = errors.New("storage error")
)

const uniqueViolation = "23505"

// Error is a classified repository failure.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("products: %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("products: %s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, kind error) *Error {
	return &Error{Op: op, Kind: kind}
}

// classify wraps a raw driver or ORM error in an *Error of the right kind.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	var kind error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey) || hasCode(err, uniqueViolation):
		kind = ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		kind = ErrNotFound
	case unavailable(err):
		kind = ErrStorageUnavailable
	default:
		kind = ErrStorage
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func unavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	// Class 08 is connection_exception; 53300 too_many_connections;
	// 57P01..57P03 are shutdown and cannot_connect_now.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case len(pgErr.Code) == 5 && pgErr.Code[:2] == "08":
			return true
		case pgErr.Code == "53300", pgErr.Code == "57P01", pgErr.Code == "57P02", pgErr.Code == "57P03":
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
