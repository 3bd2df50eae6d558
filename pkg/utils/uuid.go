package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateID gera um id curto alfanumérico, usado como chave de usuários.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
