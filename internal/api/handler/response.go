package handler

import (
	"banco-api/internal/api/handler/dto"
	"banco-api/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"

	MsgValidation       = "Erro de validação"
	MsgNotFound         = "Not Found"
	MsgIntegrity        = "Erro de integridade dos dados"
	MsgInternal         = "Erro interno do servidor"
	MsgMethodNotAllowed = "Method Not Allowed"

	DetailMalformedBody    = "Corpo da requisição inválido"
	DetailDuplicateCPF     = "CPF já cadastrado no sistema"
	DetailDuplicateEmail   = "Email já cadastrado no sistema"
	DetailIntegrityGeneric = "Erro ao processar os dados"
	DetailInternal         = "Ocorreu um erro inesperado"
	DetailRouteNotFound    = "Recurso não encontrado"
	DetailMethodNotAllowed = "Método não suportado para este recurso"
)

var errMalformedBody = errors.New("malformed request body")

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: no request body", errMalformedBody)
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		WriteErrorEnvelope(w, http.StatusInternalServerError, MsgInternal, DetailInternal)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	w.Write(response)
}

// WriteErrorEnvelope writes {status, message, errors} with the given status.
func WriteErrorEnvelope(w http.ResponseWriter, status int, message string, detail any) {
	body, err := json.Marshal(dto.ErrorResponse{Status: status, Message: message, Errors: detail})
	if err != nil {
		body = []byte(`{"status":500,"message":"` + MsgInternal + `","errors":"` + DetailInternal + `"}`)
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	w.Write(body)
}

// respondError is the single translation from error kinds to responses.
func respondError(w http.ResponseWriter, err error) {
	status, message, detail := classifyError(err)
	if status == http.StatusInternalServerError {
		slog.Default().Error("Unhandled internal error", "error", err)
	}
	WriteErrorEnvelope(w, status, message, detail)
}

func classifyError(err error) (int, string, any) {
	var bindingErr *apperrors.BindingError
	var uniqueErr *apperrors.UniqueViolationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, errMalformedBody):
		return http.StatusBadRequest, MsgValidation, DetailMalformedBody
	case errors.As(err, &bindingErr):
		return http.StatusBadRequest, MsgValidation, bindingDetail(bindingErr)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		detail := err.Error()
		if errors.As(err, &appErr) {
			detail = appErr.Message
		}
		return http.StatusBadRequest, MsgValidation, detail
	case errors.Is(err, apperrors.ErrNotFound):
		detail := http.StatusText(http.StatusNotFound)
		if errors.As(err, &appErr) {
			detail = appErr.Message
		}
		return http.StatusNotFound, MsgNotFound, detail
	case errors.As(err, &uniqueErr):
		return http.StatusConflict, MsgIntegrity, integrityDetail(uniqueErr.Column)
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return http.StatusConflict, MsgIntegrity, DetailIntegrityGeneric
	default:
		return http.StatusInternalServerError, MsgInternal, DetailInternal
	}
}

// bindingDetail is the bare message for a single rejected field and a
// field-to-message object otherwise.
func bindingDetail(e *apperrors.BindingError) any {
	if len(e.Errors) == 1 {
		return e.Errors[0].Message
	}
	fields := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		fields[fe.Field] = fe.Message
	}
	return fields
}

func integrityDetail(column string) string {
	switch column {
	case "cpf":
		return DetailDuplicateCPF
	case "email":
		return DetailDuplicateEmail
	default:
		return DetailIntegrityGeneric
	}
}

// NotFound and MethodNotAllowed keep unknown routes inside the envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteErrorEnvelope(w, http.StatusNotFound, MsgNotFound, DetailRouteNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteErrorEnvelope(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed, DetailMethodNotAllowed)
}
