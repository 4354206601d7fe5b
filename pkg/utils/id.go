package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const sessionIDLength = 16

// GenerateSessionID gera o identificador de uma nova sessão
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, sessionIDLength)
}
