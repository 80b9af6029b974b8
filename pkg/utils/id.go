package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idSize     = 6
)

// GenerateID gera um identificador curto para execuções de atualização
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idSize)
}
