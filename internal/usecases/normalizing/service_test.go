package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planilhadomain "github.com/intelimob/painel-comercial-api/infrastructure/integrator/planilha/domain"
	"github.com/intelimob/painel-comercial-api/internal/domain"
)

func TestNormalize_EmptyTable(t *testing.T) {
	assert.Empty(t, Normalize(&planilhadomain.RawTable{}))
	assert.Empty(t, Normalize(&planilhadomain.RawTable{Headers: []string{"DATA"}}))
}

func TestNormalize_HeaderSynonyms(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{
			name:    "Cabeçalho canônico",
			headers: []string{"DATA", "SITUAÇÃO", "NOME", "CPF", "EQUIPE", "CORRETOR"},
		},
		{
			name:    "Sinônimos e caixa mista",
			headers: []string{"Dia", "status", "Cliente", "cpf do cliente", "equipe", "Corretor"},
		},
		{
			name:    "Sem acentos",
			headers: []string{"DATA", "SITUACAO", "NOME DO CLIENTE", "CPF CLIENTE", "EQUIPE", "CORRETOR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &planilhadomain.RawTable{
				Headers: tt.headers,
				Rows: [][]string{
					{"05/11/2025", "Em análise", "Maria Silva", "123.456.789-09", "Alpha", "João"},
				},
			}

			events := Normalize(table)
			require.Len(t, events, 1)

			e := events[0]
			require.NotNil(t, e.Day)
			assert.Equal(t, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), *e.Day)
			assert.Equal(t, domain.StatusEmAnalise, e.Status)
			assert.Equal(t, "MARIA SILVA", e.ClientName)
			assert.Equal(t, "12345678909", e.ClientCPF)
			assert.Equal(t, "ALPHA", e.Team)
			assert.Equal(t, "JOÃO", e.Broker)
		})
	}
}

func TestNormalize_DefaultsAndBadRows(t *testing.T) {
	table := &planilhadomain.RawTable{
		Headers: []string{"DATA", "SITUAÇÃO", "NOME", "CPF", "EQUIPE", "CORRETOR", "OBSERVAÇÕES"},
		Rows: [][]string{
			{"data inválida", "???", "", "", "", "", "não numérico"},
			{"07/11/2025", "Venda Gerada", "Ana", "529.982.247-25", "", "", "R$ 350.000,00"},
			{"07/11/2025"}, // linha curta
		},
	}

	events := Normalize(table)
	require.Len(t, events, 3)

	bad := events[0]
	assert.Nil(t, bad.Day)
	assert.True(t, bad.CommercialMonth.IsZero())
	assert.Equal(t, domain.StatusOther, bad.Status)
	assert.Equal(t, domain.NotInformed, bad.Broker)
	assert.Equal(t, domain.NotInformed, bad.Team)
	assert.Zero(t, bad.VGV)

	sale := events[1]
	assert.Equal(t, domain.StatusVendaGerada, sale.Status)
	assert.Equal(t, 350000.0, sale.VGV)
	// Mês comercial ausente cai no mês do dia
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), sale.CommercialMonth)

	short := events[2]
	require.NotNil(t, short.Day)
	assert.Equal(t, domain.StatusOther, short.Status)
}

func TestNormalize_CommercialMonthLabel(t *testing.T) {
	table := &planilhadomain.RawTable{
		Headers: []string{"DATA", "DATA BASE", "SITUAÇÃO", "NOME"},
		Rows: [][]string{
			{"28/11/2025", "novembro 2025", "Em análise", "Ana"},
			{"02/12/2025", "Novembro de 2025", "Em análise", "Bia"},
		},
	}

	events := Normalize(table)
	require.Len(t, events, 2)

	november := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, november, events[0].CommercialMonth)
	// O rótulo vence o mês calendário do dia
	assert.Equal(t, november, events[1].CommercialMonth)
}

func TestNormalize_UnifiesClientKeys(t *testing.T) {
	table := &planilhadomain.RawTable{
		Headers: []string{"DATA", "SITUAÇÃO", "NOME", "CPF"},
		Rows: [][]string{
			{"01/11/2025", "Em análise", "Carlos Souza", ""},
			{"05/11/2025", "Aprovação", "Carlos Souza", "529.982.247-25"},
			{"08/11/2025", "Venda Gerada", "Carlos Souza", ""},
			{"08/11/2025", "Em análise", "Outra Pessoa", ""},
		},
	}

	events := Normalize(table)
	require.Len(t, events, 4)

	// Todas as linhas do mesmo nome compartilham a chave CPF
	assert.Equal(t, "52998224725", events[0].ClientKey)
	assert.Equal(t, "52998224725", events[1].ClientKey)
	assert.Equal(t, "52998224725", events[2].ClientKey)

	// Sem CPF em linha alguma, a chave é o nome
	assert.Equal(t, "OUTRA PESSOA", events[3].ClientKey)
}

func TestParseCommercialMonth(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected *time.Time
	}{
		{
			name:     "Mês e ano simples",
			label:    "novembro 2025",
			expected: anchorPtr(2025, time.November),
		},
		{
			name:     "Com preposição e acento",
			label:    "Março de 2025",
			expected: anchorPtr(2025, time.March),
		},
		{
			name:     "Caixa alta",
			label:    "DEZEMBRO 2024",
			expected: anchorPtr(2024, time.December),
		},
		{
			name:     "Sem ano não resolve",
			label:    "novembro",
			expected: nil,
		},
		{
			name:     "Ano fora da faixa não resolve",
			label:    "novembro 1890",
			expected: nil,
		},
		{
			name:     "Rótulo vazio",
			label:    "",
			expected: nil,
		},
		{
			name:     "Texto qualquer",
			label:    "fechamento geral",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCommercialMonth(tt.label)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func anchorPtr(year int, month time.Month) *time.Time {
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &anchor
}
