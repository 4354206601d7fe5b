package session

import "errors"

var (
	ErrInvalidSession = errors.New("sessão inválida")
	ErrExpiredSession = errors.New("sessão expirada")
)
