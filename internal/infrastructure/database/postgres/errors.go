package postgres

import (
	"banco-api/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	columnCPF   = "cpf"
	columnEmail = "email"

	integrityViolationClass = "23"

	stringDataRightTruncation = "22001"
	numericValueOutOfRange    = "22003"
)

// translateDBError maps integrity violations (SQLSTATE class 23) and values
// that do not fit their column to a UniqueViolationError and wraps anything
// else as a database error.
func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, integrityViolationClass) {
			column := violatedColumn(pgErr)
			contextLogger.Warn("Database integrity constraint violation",
				"code", pgErr.Code, "constraint", pgErr.ConstraintName, "column", column)
			return apperrors.NewUniqueViolation(column, err)
		}

		if pgErr.Code == stringDataRightTruncation || pgErr.Code == numericValueOutOfRange {
			contextLogger.Warn("Value does not fit its column", "code", pgErr.Code, "message", pgErr.Message)
			return apperrors.NewUniqueViolation("", err)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s: %w", apperrors.ErrDatabase, pgErr.Code, err)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
}

// violatedColumn attributes the violation to cpf or email. The constraint
// name is authoritative when present; otherwise the column, detail and
// message text are searched. PostgreSQL folds identifiers to lower case, so
// the text is upper-cased before looking for CPF and then EMAIL.
func violatedColumn(pgErr *pgconn.PgError) string {
	text := pgErr.ConstraintName
	if text == "" {
		text = strings.Join([]string{pgErr.ColumnName, pgErr.Detail, pgErr.Message}, " ")
	}
	text = strings.ToUpper(text)

	switch {
	case strings.Contains(text, "CPF"):
		return columnCPF
	case strings.Contains(text, "EMAIL"):
		return columnEmail
	default:
		return ""
	}
}
