package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticsRemover = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeUpper aplica trim e caixa alta, o tratamento padrão para
// corretor, equipe, cliente, construtora e empreendimento.
func NormalizeUpper(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// FoldAccents remove diacríticos ("reanálise" → "reanalise") para
// comparações insensíveis a acento.
func FoldAccents(raw string) string {
	folded, _, err := transform.String(diacriticsRemover, raw)
	if err != nil {
		return raw
	}

	return folded
}

// OnlyDigits mantém apenas os dígitos de uma string (CPF, telefone).
func OnlyDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
