package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	instanceIDLength = 12
)

// GenerateInstanceID gera o identificador desta instância do servidor
func GenerateInstanceID() (string, error) {
	return gonanoid.Generate(characters, instanceIDLength)
}
