package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto sem caracteres ambíguos (0/O, 1/I/l) para que o código de
// referência do cliente seja legível em contratos impressos
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const referenceLength = 6

// GenerateID gera o código curto de referência atribuído ao cliente na
// criação da venda
func GenerateID() (string, error) {
	return gonanoid.Generate(referenceAlphabet, referenceLength)
}
