package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a unique-constraint rejection and
// returns what the driver says about it: the index name on PostgreSQL, the
// constrained columns on SQLite.
func uniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == pgUniqueViolation
	}

	if msg := err.Error(); strings.Contains(msg, "UNIQUE constraint failed") {
		return msg, true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}
	return "", false
}

// mapUnique translates a unique violation into the first domain error whose
// markers appear in the driver detail; fallback covers the rest.
func mapUnique(err error, fallback error, rules ...uniqueRule) error {
	detail, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	for _, r := range rules {
		for _, m := range r.markers {
			if strings.Contains(detail, m) {
				return r.err
			}
		}
	}
	if fallback != nil {
		return fallback
	}
	return err
}

type uniqueRule struct {
	err     error
	markers []string
}
