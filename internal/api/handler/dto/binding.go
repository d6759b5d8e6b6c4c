package dto

import (
	"banco-api/internal/domain/customer"
	"banco-api/internal/pkg/apperrors"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// bindingRule attaches the client-facing message to a failed check on a
// request field. Field is the JSON name.
type bindingRule struct {
	Field   string
	Check   string
	Message string
}

var customerRules = []bindingRule{
	{Field: "nome", Check: "notblank", Message: "Nome é obrigatório"},
	{Field: "nome", Check: "min", Message: "Nome deve ter no mínimo 3 caracteres"},
	{Field: "cpf", Check: "notblank", Message: "CPF é obrigatório"},
	{Field: "email", Check: "notblank", Message: "Email é obrigatório"},
	{Field: "email", Check: "email", Message: "Email deve ser válido"},
	{Field: "dataNascimento", Check: "past", Message: "Data de nascimento deve ser no passado"},
	{Field: "telefone", Check: "min", Message: "Você deve inserir um telefone válido"},
	{Field: "saldo", Check: "gte", Message: "Saldo não pode ser negativo"},
}

var validate = newValidator(time.Now)

func newValidator(now func() time.Time) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Date).Time
	}, Date{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Money).InexactFloat64()
	}, Money{})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("past", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return customer.DateOf(t).Before(customer.DateOf(now()))
	})

	return v
}

// Normalize trims the free-text fields before they are checked.
func (r *CustomerRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.CPF = strings.TrimSpace(r.CPF)
	r.Email = strings.TrimSpace(r.Email)
}

// Validate runs every field check and reports one error per rejected field,
// in declaration order.
func (r *CustomerRequest) Validate() error {
	r.Normalize()
	return bindErrors(validate.Struct(r), customerRules)
}

func bindErrors(err error, rules []bindingRule) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make([]*apperrors.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &apperrors.ValidationError{
			Field:   fe.Field(),
			Message: messageFor(rules, fe.Field(), fe.Tag()),
		})
	}
	return apperrors.NewBindingError(out...)
}

func messageFor(rules []bindingRule, field, check string) string {
	for _, rule := range rules {
		if rule.Field == field && rule.Check == check {
			return rule.Message
		}
	}
	return "Valor inválido"
}
