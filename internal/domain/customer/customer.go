package customer

import (
	"banco-api/internal/pkg/apperrors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MsgInvalidCPF      = "CPF inválido"
	MsgInvalidPhone    = "Telefone inválido"
	MsgUnderage        = "Você precisa ter mais de 18 anos"
	MsgNegativeBalance = "Saldo não pode ser negativo"
	MsgNotFound        = "404 Not Found: Cliente não encontrado."

	cpfLength      = 14
	cpfAllowedRune = "1234567890.-"
	minimumAge     = 18
)

// Customer is a bank client. DataNascimento holds a civil date at UTC
// midnight; Telefone is nil when the client did not provide one. Saldo is
// invalid when the client left it out; the store rejects such a write.
type Customer struct {
	ID             int64
	Nome           string
	CPF            string
	Email          string
	DataNascimento time.Time
	Telefone       *string
	Saldo          decimal.NullDecimal
}

// ResourcePath is the canonical URI of a persisted customer.
func ResourcePath(id int64) string {
	return fmt.Sprintf("/clientes/%d", id)
}

// DateOf drops the clock and zone of t, keeping its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ReplaceWith overwrites every mutable field with the values of other.
// The identifier is kept.
func (c *Customer) ReplaceWith(other *Customer) {
	c.Nome = other.Nome
	c.CPF = other.CPF
	c.Email = other.Email
	c.DataNascimento = other.DataNascimento
	c.Telefone = other.Telefone
	c.Saldo = other.Saldo
}

// Validate applies the business rules that must hold before the customer is
// written. The first failing rule is reported as an invalid argument.
func (c *Customer) Validate(today time.Time) error {
	if !validCPF(c.CPF) {
		return apperrors.NewInvalidArgument(MsgInvalidCPF)
	}
	if !validPhone(c.Telefone) {
		return apperrors.NewInvalidArgument(MsgInvalidPhone)
	}
	if !validBirthDate(c.DataNascimento, today) {
		return apperrors.NewInvalidArgument(MsgUnderage)
	}
	if c.Saldo.Valid && c.Saldo.Decimal.IsNegative() {
		return apperrors.NewInvalidArgument(MsgNegativeBalance)
	}
	return nil
}

// validCPF checks the masked form only (XXX.XXX.XXX-XX by length and
// character set). Check digits are not verified.
func validCPF(cpf string) bool {
	if len(cpf) != cpfLength {
		return false
	}
	for _, r := range cpf {
		if !strings.ContainsRune(cpfAllowedRune, r) {
			return false
		}
	}
	return true
}

func validPhone(telefone *string) bool {
	if telefone == nil {
		return true
	}
	n := utf8.RuneCountInString(*telefone)
	return n == 10 || n == 11
}

func validBirthDate(birth, today time.Time) bool {
	coming := AddYears(DateOf(birth), minimumAge)
	return !coming.After(DateOf(today))
}

// AddYears moves a civil date by whole years. A February 29 that lands on a
// non-leap year is clamped to February 28.
func AddYears(d time.Time, years int) time.Time {
	y, m, day := d.Date()
	shifted := time.Date(y+years, m, day, 0, 0, 0, 0, time.UTC)
	if shifted.Month() != m {
		shifted = time.Date(y+years, m+1, 0, 0, 0, 0, 0, time.UTC)
	}
	return shifted
}
