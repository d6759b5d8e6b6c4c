package customer

import (
	"banco-api/internal/event"
	"banco-api/internal/infrastructure/monitoring"
	"banco-api/internal/pkg/apperrors"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

const (
	operationGet    = "get"
	operationCreate = "create"
	operationUpdate = "update"
	operationDelete = "delete"

	customerNotFound = "Customer not found by repository"
	dateLayout       = "2006-01-02"
)

type CustomerService interface {
	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
	CreateCustomer(ctx context.Context, input *Customer) (*Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, input *Customer) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type ServiceOption func(*customerService)

// WithClock replaces the source of "today" used by the age rule.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *customerService) {
		if now != nil {
			s.now = now
		}
	}
}

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger, opts ...ServiceOption) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		logger.Warn("No event publisher provided to NewCustomerService, events will be dropped")
		eventPublisher = event.NoopPublisher{}
	}

	s := &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID:     cust.ID,
		Nome:           cust.Nome,
		CPF:            cust.CPF,
		Email:          cust.Email,
		DataNascimento: cust.DataNascimento.Format(dateLayout),
		Telefone:       cust.Telefone,
		Saldo:          cust.Saldo.Decimal.StringFixed(2),
	}
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to get customer by ID")

	customer, err := s.findExisting(ctx, logger, customerID)
	monitoring.RecordCustomerOperation(operationGet, outcomeOf(err))
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Successfully retrieved customer")
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, input *Customer) (*Customer, error) {
	logger := s.logger.With(slog.String("operation", operationCreate))
	logger.InfoContext(ctx, "Attempting to create new customer")

	customer, err := s.create(ctx, logger, input)
	monitoring.RecordCustomerOperation(operationCreate, outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, logger, operationCreate, customer)
	logger.InfoContext(ctx, "Successfully created new customer", slog.Int64("customerID", customer.ID))
	return customer, nil
}

func (s *customerService) create(ctx context.Context, logger *slog.Logger, input *Customer) (*Customer, error) {
	if input == nil {
		return nil, errors.New("customer input cannot be nil")
	}

	customer := &Customer{}
	customer.ReplaceWith(input)

	if err := customer.Validate(s.now()); err != nil {
		logger.WarnContext(ctx, "Business validation failed", slog.Any("error", err))
		return nil, err
	}

	logger.DebugContext(ctx, "Calling repository Save")
	if err := s.repo.Save(context.WithoutCancel(ctx), customer); err != nil {
		return nil, s.translateWriteError(ctx, logger, err, "failed to save new customer")
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, input *Customer) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID), slog.String("operation", operationUpdate))
	logger.InfoContext(ctx, "Attempting to update customer")

	customer, err := s.update(ctx, logger, customerID, input)
	monitoring.RecordCustomerOperation(operationUpdate, outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, logger, operationUpdate, customer)
	logger.InfoContext(ctx, "Successfully updated customer")
	return customer, nil
}

func (s *customerService) update(ctx context.Context, logger *slog.Logger, customerID int64, input *Customer) (*Customer, error) {
	if input == nil {
		return nil, errors.New("customer input cannot be nil")
	}

	customer, err := s.findExisting(ctx, logger, customerID)
	if err != nil {
		return nil, err
	}

	customer.ReplaceWith(input)

	if err := customer.Validate(s.now()); err != nil {
		logger.WarnContext(ctx, "Business validation failed", slog.Any("error", err))
		return nil, err
	}

	logger.DebugContext(ctx, "Calling repository Save to persist replacement")
	if err := s.repo.Save(context.WithoutCancel(ctx), customer); err != nil {
		return nil, s.translateWriteError(ctx, logger, err, fmt.Sprintf("failed to update customer %d", customerID))
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	logger := s.logger.With(slog.Int64("customerID", customerID), slog.String("operation", operationDelete))
	logger.InfoContext(ctx, "Attempting to delete customer")

	customer, err := s.delete(ctx, logger, customerID)
	monitoring.RecordCustomerOperation(operationDelete, outcomeOf(err))
	if err != nil {
		return err
	}

	s.publish(ctx, logger, operationDelete, customer)
	logger.InfoContext(ctx, "Successfully deleted customer")
	return nil
}

func (s *customerService) delete(ctx context.Context, logger *slog.Logger, customerID int64) (*Customer, error) {
	customer, err := s.findExisting(ctx, logger, customerID)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "Calling repository Delete")
	if err := s.repo.Delete(context.WithoutCancel(ctx), customer); err != nil {
		return nil, s.translateWriteError(ctx, logger, err, fmt.Sprintf("failed to delete customer %d", customerID))
	}
	return customer, nil
}

func (s *customerService) findExisting(ctx context.Context, logger *slog.Logger, customerID int64) (*Customer, error) {
	logger.DebugContext(ctx, "Calling repository FindByID")
	customer, found, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	if !found {
		logger.WarnContext(ctx, customerNotFound)
		return nil, apperrors.NewNotFound(MsgNotFound)
	}
	return customer, nil
}

// translateWriteError keeps integrity violations as they are, turns a
// vanished row into NotFound and wraps everything else.
func (s *customerService) translateWriteError(ctx context.Context, logger *slog.Logger, err error, msg string) error {
	if errors.Is(err, apperrors.ErrAlreadyExists) {
		logger.WarnContext(ctx, "Repository rejected write on integrity constraint", slog.Any("error", err))
		return err
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.WarnContext(ctx, "Customer disappeared before write completed")
		return apperrors.NewNotFound(MsgNotFound)
	}
	logger.ErrorContext(ctx, "Repository write failed", slog.Any("error", err))
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *customerService) publish(ctx context.Context, logger *slog.Logger, operation string, customer *Customer) {
	evt := event.CustomerEvent{
		Timestamp: s.now().UTC(),
		Payload:   NewCustomerEventPayload(customer),
	}

	pubCtx := context.WithoutCancel(ctx)
	var err error
	switch operation {
	case operationCreate:
		err = s.pub.PublishCustomerCreated(pubCtx, evt)
	case operationUpdate:
		err = s.pub.PublishCustomerUpdated(pubCtx, evt)
	case operationDelete:
		err = s.pub.PublishCustomerDeleted(pubCtx, evt)
	}

	if err != nil {
		logger.ErrorContext(ctx, "Customer written, but FAILED to publish event", slog.Any("error", err))
		return
	}
	logger.DebugContext(ctx, "Published customer event")
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return monitoring.OutcomeSuccess
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return monitoring.OutcomeInvalid
	case errors.Is(err, apperrors.ErrNotFound):
		return monitoring.OutcomeNotFound
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return monitoring.OutcomeConflict
	default:
		return monitoring.OutcomeError
	}
}
