package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"banco-api/internal/domain/customer"
	"banco-api/internal/infrastructure/monitoring"
	"banco-api/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	insertCustomerSQL = `
        INSERT INTO clientes (nome, cpf, email, data_nascimento, telefone, saldo)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	updateCustomerSQL = `
        UPDATE clientes
        SET nome = $1,
            cpf = $2,
            email = $3,
            data_nascimento = $4,
            telefone = $5,
            saldo = $6
        WHERE id = $7`

	findCustomerByIDSQL = `
        SELECT id, nome, cpf, email, data_nascimento, telefone, saldo
        FROM clientes
        WHERE id = $1`

	deleteCustomerSQL = `DELETE FROM clientes WHERE id = $1`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.ID == 0 {
		return r.createCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.DebugContext(ctx, "Attempting to insert new customer")

	start := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, insertCustomerSQL,
		cust.Nome,
		cust.CPF,
		cust.Email,
		cust.DataNascimento,
		cust.Telefone,
		cust.Saldo,
	).Scan(&id)
	observe("customer_insert", start, err)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to integrity constraint violation")
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("failed to insert customer: %w", translatedErr)
	}

	cust.ID = id
	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	logger := r.logger.With(slog.Int64("customerID", cust.ID))
	logger.DebugContext(ctx, "Attempting to update customer")

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, updateCustomerSQL,
		cust.Nome,
		cust.CPF,
		cust.Email,
		cust.DataNascimento,
		cust.Telefone,
		cust.Saldo,
		cust.ID,
	)
	observe("customer_update", start, err)

	if err != nil {
		translatedErr := translateDBError(err, logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			logger.WarnContext(ctx, "Failed to update customer due to integrity constraint violation")
			return translatedErr
		}
		logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("failed to update customer: %w", translatedErr)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, bool, error) {
	logger := r.logger.With(slog.Int64("customerID", customerID))
	logger.DebugContext(ctx, "Attempting to find customer by ID")

	start := time.Now()
	var cust customer.Customer
	err := r.db.QueryRow(ctx, findCustomerByIDSQL, customerID).Scan(
		&cust.ID,
		&cust.Nome,
		&cust.CPF,
		&cust.Email,
		&cust.DataNascimento,
		&cust.Telefone,
		&cust.Saldo,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		observe("customer_find_by_id", start, nil)
		logger.DebugContext(ctx, "Customer not found")
		return nil, false, nil
	}
	observe("customer_find_by_id", start, err)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to query customer by ID", slog.Any("error", err))
		return nil, false, fmt.Errorf("failed to find customer by id: %w", translateDBError(err, logger))
	}

	cust.DataNascimento = customer.DateOf(cust.DataNascimento)
	return &cust, true, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	logger := r.logger.With(slog.Int64("customerID", cust.ID))
	logger.DebugContext(ctx, "Attempting to delete customer")

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, deleteCustomerSQL, cust.ID)
	observe("customer_delete", start, err)

	if err != nil {
		translatedErr := translateDBError(err, logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			return translatedErr
		}
		logger.ErrorContext(ctx, "Failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer: %w", translatedErr)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	logger.InfoContext(ctx, "Customer deleted successfully")
	return nil
}

func observe(queryName string, start time.Time, err error) {
	status := monitoring.StatusOK
	if err != nil {
		status = monitoring.StatusError
	}
	monitoring.RecordDBQuery(queryName, status, time.Since(start))
}
