package classifying

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intelimob/painel-comercial-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.Status
	}{
		{
			name:     "Em análise com acento",
			raw:      "Em Análise",
			expected: domain.StatusEmAnalise,
		},
		{
			name:     "Em analise sem acento",
			raw:      "em analise",
			expected: domain.StatusEmAnalise,
		},
		{
			name:     "Reanálise",
			raw:      "REANÁLISE",
			expected: domain.StatusReanalise,
		},
		{
			name:     "Aprovação conta como aprovado",
			raw:      "Aprovação",
			expected: domain.StatusAprovado,
		},
		{
			name:     "Aprovado Bacen conta na regra permissiva de token",
			raw:      "APROVADO BACEN",
			expected: domain.StatusAprovado,
		},
		{
			name:     "Reprovado",
			raw:      "reprovado",
			expected: domain.StatusReprovado,
		},
		{
			name:     "Venda gerada",
			raw:      "Venda Gerada",
			expected: domain.StatusVendaGerada,
		},
		{
			name:     "Venda informada",
			raw:      "venda informada pelo corretor",
			expected: domain.StatusVendaInformada,
		},
		{
			name:     "Pendência vence aprovação na ordem das regras",
			raw:      "APROVADO COM PENDÊNCIA",
			expected: domain.StatusPendencia,
		},
		{
			name:     "Desistência vence venda na ordem das regras",
			raw:      "VENDA GERADA - CLIENTE DESISTIU",
			expected: domain.StatusDesistiu,
		},
		{
			name:     "Desistiu simples",
			raw:      "Desistiu",
			expected: domain.StatusDesistiu,
		},
		{
			name:     "Texto não reconhecido cai no coletor",
			raw:      "AGUARDANDO DOCUMENTAÇÃO",
			expected: domain.StatusOther,
		},
		{
			name:     "Vazio cai no coletor",
			raw:      "",
			expected: domain.StatusOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.raw))
		})
	}
}

// Reclassificar a forma canônica literal devolve o mesmo status.
func TestClassify_CanonicalRoundTrip(t *testing.T) {
	canonical := []domain.Status{
		domain.StatusEmAnalise,
		domain.StatusReanalise,
		domain.StatusAprovado,
		domain.StatusReprovado,
		domain.StatusVendaGerada,
		domain.StatusVendaInformada,
		domain.StatusPendencia,
		domain.StatusDesistiu,
	}

	for _, status := range canonical {
		assert.Equal(t, status, Classify(string(status)), "status %s não fecha o ciclo", status)
	}
}

func TestIsExactApproval(t *testing.T) {
	assert.True(t, IsExactApproval("APROVAÇÃO"))
	assert.True(t, IsExactApproval("aprovação"))
	assert.True(t, IsExactApproval("APROVACAO"))
	assert.False(t, IsExactApproval("APROVADO"))
	assert.False(t, IsExactApproval("APROVADO BACEN"))
	assert.False(t, IsExactApproval("REAPROVAÇÃO"))
}

func TestCountsAsApproval(t *testing.T) {
	bacen := domain.Event{RawSituation: "APROVADO BACEN", Status: domain.StatusAprovado}
	exact := domain.Event{RawSituation: "Aprovação", Status: domain.StatusAprovado}
	analysis := domain.Event{RawSituation: "Em análise", Status: domain.StatusEmAnalise}

	assert.True(t, CountsAsApproval(bacen, domain.ApprovalPermissive))
	assert.False(t, CountsAsApproval(bacen, domain.ApprovalExact))
	assert.True(t, CountsAsApproval(exact, domain.ApprovalPermissive))
	assert.True(t, CountsAsApproval(exact, domain.ApprovalExact))
	assert.False(t, CountsAsApproval(analysis, domain.ApprovalPermissive))
}
