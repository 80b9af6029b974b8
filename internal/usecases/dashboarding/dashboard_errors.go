package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrEmptyUpdate       = errors.New("no editable fields informed")
	ErrRefreshSuperseded = errors.New("refresh superseded by a newer request")
	ErrGenerateRunID     = errors.New("error generating refresh run id")
)

// StoreError é um erro com contexto adicional para operações sobre lojas
type StoreError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	StoreID string // ID da loja envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *StoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(err error, code string, details string) *StoreError {
	return &StoreError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewStoreErrorWithID(err error, code string, storeID string, details string) *StoreError {
	return &StoreError{
		Err:     err,
		Code:    code,
		StoreID: storeID,
		Details: details,
	}
}
