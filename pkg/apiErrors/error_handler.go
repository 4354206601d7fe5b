package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de carga do dataset
	ErrNoData          = "DATA_001" // Fonte indisponível, nenhum dado para exibir
	ErrSourceMalformed = "DATA_002" // Fonte com estrutura inválida

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	ErrNotFound = "NF_001" // Recurso não encontrado

	ErrInvalidSession = "SES_001" // Token de sessão inválido ou expirado

	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrNoData:              http.StatusServiceUnavailable,
	ErrSourceMalformed:     http.StatusBadGateway,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidSession:      http.StatusUnauthorized,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go, escolhendo o código
// pelo tipo do erro
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	apiErr := APIError{Code: CodeFor(err), Message: err.Error()}

	var loadErr *domain.DataLoadError
	if errors.As(err, &loadErr) {
		apiErr.Details = map[string]string{
			"source": loadErr.Source,
			"kind":   loadErr.Kind.Error(),
		}
	}

	return apiErr
}

// CodeFor escolhe o código de erro da API para um erro do domínio
func CodeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrSourceMalformed):
		return ErrSourceMalformed
	case errors.Is(err, domain.ErrSourceUnavailable), errors.Is(err, domain.ErrNoData):
		return ErrNoData
	case errors.Is(err, domain.ErrKolNotFound):
		return ErrNotFound
	case errors.Is(err, session.ErrInvalidSession), errors.Is(err, session.ErrExpiredSession):
		return ErrInvalidSession
	default:
		return ErrInternalServer
	}
}

// WriteFromError escreve a resposta de erro correspondente ao erro informado
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
