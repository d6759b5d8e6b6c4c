package handler

import (
	"banco-api/internal/api/handler/dto"
	"banco-api/internal/domain/customer"
	"banco-api/internal/pkg/apperrors"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	customerIDParam  = "id"
	msgInvalidPathID = "O parâmetro 'id' deve ser um número inteiro válido"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func getCustomerIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, customerIDParam), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(customerIDParam, msgInvalidPathID)
	}
	return id, nil
}

func (h *CustomerHandler) bindCustomer(r *http.Request) (*customer.Customer, error) {
	var req dto.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		return nil, err
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		return nil, err
	}
	h.logger.DebugContext(r.Context(), "Request validation passed")
	return req.ToDomain(), nil
}

func (h *CustomerHandler) logServiceError(r *http.Request, msg string, err error) {
	level := slog.LevelError
	if errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrInvalidArgument) ||
		errors.Is(err, apperrors.ErrAlreadyExists) {
		level = slog.LevelWarn
	}
	h.logger.Log(r.Context(), level, msg, slog.Any("error", err))
}

// GetCustomer handles GET /clientes/{id}
// @Summary Retrieve a customer
// @Description Returns the customer with the given identifier.
// @Tags Clientes
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse "Customer found"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clientes/{id} [get]
// @Security BearerAuth
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Calling customer service GetCustomer", slog.Int64("customerID", customerID))
	found, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		h.logServiceError(r, "Service failed to get customer", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(found))
}

// CreateCustomer handles POST /clientes
// @Summary Create a customer
// @Description Validates and stores a new customer. The Location header points to the created resource.
// @Tags Clientes
// @Accept json
// @Produce json
// @Param request body dto.CustomerRequest true "Customer data"
// @Success 200 {object} dto.CustomerResponse "Customer created"
// @Header 200 {string} Location "/clientes/{id}"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "CPF or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clientes [post]
// @Security BearerAuth
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	input, err := h.bindCustomer(r)
	if err != nil {
		respondError(w, err)
		return
	}

	created, err := h.service.CreateCustomer(r.Context(), input)
	if err != nil {
		h.logServiceError(r, "Service failed to create customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.Int64("customerID", created.ID))
	w.Header().Set("Location", customer.ResourcePath(created.ID))
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(created))
}

// UpdateCustomer handles PUT /clientes/{id}
// @Summary Replace a customer
// @Description Replaces every mutable field of the customer. Fields left out of the body are treated as absent.
// @Tags Clientes
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body dto.CustomerRequest true "Customer data"
// @Success 200 {object} dto.CustomerResponse "Customer updated"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 409 {object} dto.ErrorResponse "CPF or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clientes/{id} [put]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	input, err := h.bindCustomer(r)
	if err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.service.UpdateCustomer(r.Context(), customerID, input)
	if err != nil {
		h.logServiceError(r, "Service failed to update customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(updated))
}

// DeleteCustomer handles DELETE /clientes/{id}
// @Summary Delete a customer
// @Tags Clientes
// @Param id path int true "Customer ID"
// @Success 204 "Customer deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clientes/{id} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		h.logServiceError(r, "Service failed to delete customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully", slog.Int64("customerID", customerID))
	w.WriteHeader(http.StatusNoContent)
}
