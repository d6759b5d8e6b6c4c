package dto

import (
	"banco-api/internal/domain/customer"
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date is a civil date encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: customer.DateOf(t)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date must be a string in %s format", dateLayout)
	}
	t, err := time.Parse(dateLayout, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", data, err)
	}
	d.Time = t
	return nil
}

// Money is a monetary amount encoded as a JSON number with two decimals.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return m.Decimal.UnmarshalJSON(data)
}

// CustomerRequest is the body of POST and PUT /clientes. An id in the body
// is not decoded; the path or the store decides it.
type CustomerRequest struct {
	Nome           string  `json:"nome" validate:"notblank,min=3" example:"João da Silva"`
	CPF            string  `json:"cpf" validate:"notblank" example:"123.456.789-10"`
	Email          string  `json:"email" validate:"notblank,email" example:"joao@email.com"`
	DataNascimento *Date   `json:"dataNascimento" validate:"past" swaggertype:"string" example:"1990-01-01"`
	Telefone       *string `json:"telefone" validate:"omitempty,min=11" example:"11999999999"`
	Saldo          *Money  `json:"saldo" validate:"omitempty,gte=0" swaggertype:"number" example:"1000.00"`
}

// ToDomain builds the customer described by the request. An absent saldo
// stays absent.
func (r *CustomerRequest) ToDomain() *customer.Customer {
	c := &customer.Customer{
		Nome:     r.Nome,
		CPF:      r.CPF,
		Email:    r.Email,
		Telefone: r.Telefone,
	}
	if r.DataNascimento != nil {
		c.DataNascimento = customer.DateOf(r.DataNascimento.Time)
	}
	if r.Saldo != nil {
		c.Saldo = decimal.NewNullDecimal(r.Saldo.Decimal)
	}
	return c
}

type CustomerResponse struct {
	ID             int64   `json:"id" example:"1"`
	Nome           string  `json:"nome" example:"João da Silva"`
	CPF            string  `json:"cpf" example:"123.456.789-10"`
	Email          string  `json:"email" example:"joao@email.com"`
	DataNascimento Date    `json:"dataNascimento" swaggertype:"string" example:"1990-01-01"`
	Telefone       *string `json:"telefone" example:"11999999999"`
	Saldo          Money   `json:"saldo" swaggertype:"number" example:"1000.00"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		ID:             cust.ID,
		Nome:           cust.Nome,
		CPF:            cust.CPF,
		Email:          cust.Email,
		DataNascimento: NewDate(cust.DataNascimento),
		Telefone:       cust.Telefone,
		Saldo:          NewMoney(cust.Saldo.Decimal),
	}
}
