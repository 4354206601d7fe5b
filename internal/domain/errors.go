package domain

import (
	"errors"
	"fmt"
)

// Erros de carga da fonte de dados
var (
	// ErrSourceUnavailable indica credenciais ou arquivos ausentes
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrSourceMalformed indica coluna obrigatória ausente ou tabela ilegível
	ErrSourceMalformed = errors.New("source malformed")
	// ErrNoData indica que nenhum dataset está disponível; todo DataLoadError o carrega
	ErrNoData = errors.New("no data")
	// ErrKolNotFound indica que o KOL não existe na tabela mestre
	ErrKolNotFound = errors.New("kol not found")
)

// DataLoadError é o erro devolvido pelo pipeline quando a carga falha
type DataLoadError struct {
	Kind    error  // ErrSourceUnavailable ou ErrSourceMalformed
	Source  string // Nome da fonte (csv, workbook, sheets, postgres)
	Details string
	Cause   error
}

// Error implementa a interface error
func (e *DataLoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Source, e.Kind.Error())
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

// Unwrap permite errors.Is com o tipo, com ErrNoData e com a causa
func (e *DataLoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind, ErrNoData}
	}
	return []error{e.Kind, ErrNoData, e.Cause}
}

// NewUnavailableError cria um DataLoadError de fonte indisponível
func NewUnavailableError(source string, details string, cause error) *DataLoadError {
	return &DataLoadError{Kind: ErrSourceUnavailable, Source: source, Details: details, Cause: cause}
}

// NewMalformedError cria um DataLoadError de fonte malformada
func NewMalformedError(source string, details string, cause error) *DataLoadError {
	return &DataLoadError{Kind: ErrSourceMalformed, Source: source, Details: details, Cause: cause}
}

// AsDataLoadError converte qualquer erro de carga em DataLoadError
func AsDataLoadError(source string, err error) *DataLoadError {
	var loadErr *DataLoadError
	if errors.As(err, &loadErr) {
		return loadErr
	}
	return NewUnavailableError(source, "", err)
}
