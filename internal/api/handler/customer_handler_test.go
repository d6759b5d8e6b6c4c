package handler_test

import (
	"banco-api/internal/api/handler"
	"banco-api/internal/api/handler/dto"
	"banco-api/internal/domain/customer"
	"banco-api/internal/pkg/apperrors"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerService struct {
	mock.Mock
}

var _ customer.CustomerService = (*MockCustomerService)(nil)

func (_m *MockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) CreateCustomer(ctx context.Context, input *customer.Customer) (*customer.Customer, error) {
	ret := _m.Called(ctx, input)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID int64, input *customer.Customer) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID, input)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)
	return ret.Error(0)
}

type errorEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}

const validBody = `{"nome":"João da Silva","cpf":"123.456.789-10","email":"joao@email.com","dataNascimento":"1990-01-01","telefone":"11999999999","saldo":1000.00}`

func strPtr(s string) *string { return &s }

func sampleCustomer(id int64) *customer.Customer {
	return &customer.Customer{
		ID:             id,
		Nome:           "João da Silva",
		CPF:            "123.456.789-10",
		Email:          "joao@email.com",
		DataNascimento: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		Telefone:       strPtr("11999999999"),
		Saldo:          decimal.NewNullDecimal(decimal.RequireFromString("1000.00")),
	}
}

func newHandler() (*MockCustomerService, *handler.CustomerHandler) {
	mockService := new(MockCustomerService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return mockService, handler.NewCustomerHandler(mockService, logger)
}

func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, rec.Code, env.Status)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	return env
}

func TestCreateCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.ID == 0 && c.Nome == "João da Silva" && c.Saldo.Decimal.Equal(decimal.NewFromInt(1000))
		})).Return(sampleCustomer(1), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/clientes/1", rec.Header().Get("Location"))
		assert.JSONEq(t,
			`{"id":1,"nome":"João da Silva","cpf":"123.456.789-10","email":"joao@email.com","dataNascimento":"1990-01-01","telefone":"11999999999","saldo":1000.00}`,
			rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"saldo":1000.00`)
		mockService.AssertExpectations(t)
	})

	t.Run("body id is ignored", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.ID == 0
		})).Return(sampleCustomer(3), nil).Once()

		body := strings.Replace(validBody, `{"nome"`, `{"id":77,"nome"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/clientes/3", rec.Header().Get("Location"))
		mockService.AssertExpectations(t)
	})

	t.Run("malformed json", func(t *testing.T) {
		mockService, h := newHandler()
		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(`{"nome":`))
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, handler.MsgValidation, env.Message)
		assert.Equal(t, handler.DetailMalformedBody, env.Errors)
		mockService.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
	})

	t.Run("single binding error is a string", func(t *testing.T) {
		mockService, h := newHandler()
		body := strings.Replace(validBody, `"nome":"João da Silva"`, `"nome":"Jo"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Nome deve ter no mínimo 3 caracteres", env.Errors)
		mockService.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
	})

	t.Run("several binding errors are an object", func(t *testing.T) {
		mockService, h := newHandler()
		body := `{"nome":"Jo","cpf":"","email":"not-an-email","dataNascimento":"2999-01-01","saldo":-1}`
		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, handler.MsgValidation, env.Message)
		assert.Equal(t, map[string]any{
			"nome":           "Nome deve ter no mínimo 3 caracteres",
			"cpf":            "CPF é obrigatório",
			"email":          "Email deve ser válido",
			"dataNascimento": "Data de nascimento deve ser no passado",
			"saldo":          "Saldo não pode ser negativo",
		}, env.Errors)
		mockService.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
	})

	t.Run("business rule violation", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("CreateCustomer", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewInvalidArgument(customer.MsgInvalidCPF)).Once()

		body := strings.Replace(validBody, "123.456.789-10", "12345678910", 1)
		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, handler.MsgValidation, env.Message)
		assert.Equal(t, customer.MsgInvalidCPF, env.Errors)
	})

	t.Run("duplicate cpf", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("CreateCustomer", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewUniqueViolation("cpf", errors.New("dup"))).Once()

		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(validBody))
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, handler.MsgIntegrity, env.Message)
		assert.Equal(t, handler.DetailDuplicateCPF, env.Errors)
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("internal error hides details", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("CreateCustomer", mock.Anything, mock.Anything).
			Return(nil, apperrors.WrapDatabaseError(errors.New("password authentication failed"), "insert")).Once()

		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(validBody))
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, handler.MsgInternal, env.Message)
		assert.Equal(t, handler.DetailInternal, env.Errors)
		assert.NotContains(t, rec.Body.String(), "password")
	})
}

func TestGetCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("GetCustomer", mock.Anything, int64(1)).Return(sampleCustomer(1), nil).Once()

		req := withID(httptest.NewRequest(http.MethodGet, "/clientes/1", nil), "1")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "1990-01-01", resp.DataNascimento.Format("2006-01-02"))
		assert.Equal(t, "1000.00", resp.Saldo.Decimal.StringFixed(2))
		mockService.AssertExpectations(t)
	})

	t.Run("absent telefone is null", func(t *testing.T) {
		mockService, h := newHandler()
		c := sampleCustomer(2)
		c.Telefone = nil
		mockService.On("GetCustomer", mock.Anything, int64(2)).Return(c, nil).Once()

		req := withID(httptest.NewRequest(http.MethodGet, "/clientes/2", nil), "2")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Contains(t, rec.Body.String(), `"telefone":null`)
	})

	t.Run("invalid customer ID", func(t *testing.T) {
		mockService, h := newHandler()
		req := withID(httptest.NewRequest(http.MethodGet, "/clientes/abc", nil), "abc")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, handler.MsgValidation, env.Message)
		assert.Contains(t, env.Errors, "'id'")
		mockService.AssertNotCalled(t, "GetCustomer", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("GetCustomer", mock.Anything, int64(9)).
			Return(nil, apperrors.NewNotFound(customer.MsgNotFound)).Once()

		req := withID(httptest.NewRequest(http.MethodGet, "/clientes/9", nil), "9")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, handler.MsgNotFound, env.Message)
		assert.Equal(t, customer.MsgNotFound, env.Errors)
	})
}

func TestUpdateCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newHandler()
		updated := sampleCustomer(5)
		updated.Email = "novo@email.com"
		mockService.On("UpdateCustomer", mock.Anything, int64(5), mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Email == "novo@email.com"
		})).Return(updated, nil).Once()

		body := strings.Replace(validBody, "joao@email.com", "  novo@email.com ", 1)
		req := withID(httptest.NewRequest(http.MethodPut, "/clientes/5", strings.NewReader(body)), "5")
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "novo@email.com", resp.Email)
		mockService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("UpdateCustomer", mock.Anything, int64(999999), mock.Anything).
			Return(nil, apperrors.NewNotFound(customer.MsgNotFound)).Once()

		req := withID(httptest.NewRequest(http.MethodPut, "/clientes/999999", strings.NewReader(validBody)), "999999")
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, customer.MsgNotFound, env.Errors)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("UpdateCustomer", mock.Anything, int64(5), mock.Anything).
			Return(nil, apperrors.NewUniqueViolation("email", nil)).Once()

		req := withID(httptest.NewRequest(http.MethodPut, "/clientes/5", strings.NewReader(validBody)), "5")
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, handler.DetailDuplicateEmail, env.Errors)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		mockService, h := newHandler()
		req := withID(httptest.NewRequest(http.MethodPut, "/clientes/5", strings.NewReader(`{"nome":"Maria Souza"}`)), "5")
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		fields, ok := env.Errors.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "CPF é obrigatório", fields["cpf"])
		assert.Equal(t, "Email é obrigatório", fields["email"])
		assert.Equal(t, "Data de nascimento deve ser no passado", fields["dataNascimento"])
		mockService.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("DeleteCustomer", mock.Anything, int64(4)).Return(nil).Once()

		req := withID(httptest.NewRequest(http.MethodDelete, "/clientes/4", nil), "4")
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockService, h := newHandler()
		mockService.On("DeleteCustomer", mock.Anything, int64(4)).
			Return(apperrors.NewNotFound(customer.MsgNotFound)).Once()

		req := withID(httptest.NewRequest(http.MethodDelete, "/clientes/4", nil), "4")
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid customer ID", func(t *testing.T) {
		mockService, h := newHandler()
		req := withID(httptest.NewRequest(http.MethodDelete, "/clientes/1.5", nil), "1.5")
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "DeleteCustomer", mock.Anything, mock.Anything)
	})
}

func TestNewCustomerHandler_Panics(t *testing.T) {
	assert.Panics(t, func() { handler.NewCustomerHandler(nil, slog.Default()) })
	assert.Panics(t, func() { handler.NewCustomerHandler(new(MockCustomerService), nil) })
}
