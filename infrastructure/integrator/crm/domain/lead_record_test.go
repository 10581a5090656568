package crmdomain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRecord_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected LeadRecord
	}{
		{
			name:    "campos em portugues",
			payload: `{"id": "L1", "corretor": "JOAO", "equipe": "ALPHA", "capturado_em": "2025-11-10"}`,
			expected: LeadRecord{
				ID:         "L1",
				Broker:     "JOAO",
				Team:       "ALPHA",
				CapturedAt: timePtr(2025, 11, 10),
			},
		},
		{
			name:    "campos em ingles",
			payload: `{"lead_id": "L2", "owner_name": "Maria", "team": "BETA", "captured_at": "2025-11-12T08:30:00Z"}`,
			expected: LeadRecord{
				ID:         "L2",
				Broker:     "Maria",
				Team:       "BETA",
				CapturedAt: timeRFC3339Ptr("2025-11-12T08:30:00Z"),
			},
		},
		{
			name:     "id numerico vira string",
			payload:  `{"id": 4210, "responsavel": "Pedro"}`,
			expected: LeadRecord{ID: "4210", Broker: "Pedro"},
		},
		{
			name:     "data brasileira",
			payload:  `{"codigo": "L3", "data_captura": "10/11/2025"}`,
			expected: LeadRecord{ID: "L3", CapturedAt: timePtr(2025, 11, 10)},
		},
		{
			name:     "data invalida fica nula",
			payload:  `{"id": "L4", "captured_at": "ontem"}`,
			expected: LeadRecord{ID: "L4"},
		},
		{
			name:     "campos desconhecidos ignorados",
			payload:  `{"id": "L5", "telefone": "11999990000", "score": 87}`,
			expected: LeadRecord{ID: "L5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var record LeadRecord
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &record))
			assert.Equal(t, tc.expected, record)
		})
	}
}

func TestPage_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name         string
		payload      string
		expectedIDs  []string
		expectedLast bool
	}{
		{
			name:        "lista nua",
			payload:     `[{"id": "L1"}, {"id": "L2"}]`,
			expectedIDs: []string{"L1", "L2"},
		},
		{
			name:         "envelope com has_more falso",
			payload:      `{"data": [{"id": "L1"}], "has_more": false}`,
			expectedIDs:  []string{"L1"},
			expectedLast: true,
		},
		{
			name:        "envelope com has_more verdadeiro",
			payload:     `{"data": [{"id": "L1"}], "has_more": true}`,
			expectedIDs: []string{"L1"},
		},
		{
			name:         "envelope com meta na ultima pagina",
			payload:      `{"data": [{"id": "L1"}], "meta": {"current_page": 3, "last_page": 3}}`,
			expectedIDs:  []string{"L1"},
			expectedLast: true,
		},
		{
			name:        "envelope com meta no meio do feed",
			payload:     `{"data": [{"id": "L1"}], "meta": {"current_page": 1, "last_page": 3}}`,
			expectedIDs: []string{"L1"},
		},
		{
			name:        "envelope vazio",
			payload:     `{"data": []}`,
			expectedIDs: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var page Page
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &page))

			ids := make([]string, 0, len(page.Records))
			for _, record := range page.Records {
				ids = append(ids, record.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
			assert.Equal(t, tc.expectedLast, page.LastPage)
		})
	}
}

func timePtr(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func timeRFC3339Ptr(value string) *time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return &t
}
