package domain

import "time"

// Projection resume o rendimento dos últimos três meses comerciais e o
// retro-cálculo de atividade para uma meta de vendas.
//
// Defined é falso quando não há vendas na janela; nesse caso os índices
// por venda são indefinidos e o painel exibe "—".
type Projection struct {
	Defined bool `json:"defined"`

	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`

	AnalysesBase3M int `json:"analyses_base_3m"`
	Approvals3M    int `json:"approvals_3m"`
	Sales3M        int `json:"sales_3m"`

	AnalysesPerSale  float64 `json:"analyses_per_sale,omitempty"`
	ApprovalsPerSale float64 `json:"approvals_per_sale,omitempty"`

	SalesTarget       int `json:"sales_target"`
	RequiredAnalyses  int `json:"required_analyses,omitempty"`
	RequiredApprovals int `json:"required_approvals,omitempty"`
}

// PacePoint é um ponto das séries de ritmo (real x meta) de um gráfico.
// Real é nil para dias futuros.
type PacePoint struct {
	Day  time.Time `json:"day"`
	Real *float64  `json:"real"`
	Meta float64   `json:"meta"`
}

// PaceOverlay compara o acumulado real com a reta da meta no período.
type PaceOverlay struct {
	Target int         `json:"target"`
	Points []PacePoint `json:"points"`
}

// ProjectionResponse é o envelope da rota de projeção.
type ProjectionResponse struct {
	Projection Projection   `json:"projection"`
	Pace       *PaceOverlay `json:"pace,omitempty"`
	Banner     string       `json:"banner,omitempty"`
	Stale      bool         `json:"stale,omitempty"`
}
