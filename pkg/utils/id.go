package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// alfabeto sem símbolos para os IDs curtos persistidos no banco.
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 6

// GenerateID devolve um identificador curto aleatório, usado como chave
// primária dos snapshots.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
