package domain

// FunnelMetrics agrega os contadores do funil na janela consultada.
//
// AnalysesVolume conta análises e reanálises; AnalysesBase conta apenas
// EM_ANALISE e é o denominador das taxas de conversão, porque reanálise é
// continuação da mesma oportunidade e não abre boca de funil.
type FunnelMetrics struct {
	AnalysesVolume int `json:"analyses_volume"`
	AnalysesBase   int `json:"analyses_base"`
	Reanalyses     int `json:"reanalyses"`
	Approvals      int `json:"approvals"`
	Rejections     int `json:"rejections"`
	Sales          int `json:"sales"`

	VGVTotal   float64 `json:"vgv_total"`
	TicketMean float64 `json:"ticket_mean"`
	MaxVGV     float64 `json:"max_vgv"`

	RateApprovalAnalysis float64 `json:"rate_approval_analysis"`
	RateSaleAnalysis     float64 `json:"rate_sale_analysis"`
	RateSaleApproval     float64 `json:"rate_sale_approval"`

	ActiveBrokers     int     `json:"active_brokers"`
	ProductiveBrokers int     `json:"productive_brokers"`
	ProductivityRatio float64 `json:"productivity_ratio"`
}

// FunnelResponse é o envelope da rota de funil.
type FunnelResponse struct {
	Metrics FunnelMetrics `json:"metrics"`
	Sales   []Event       `json:"sales"`
	Banner  string        `json:"banner,omitempty"`
	Stale   bool          `json:"stale,omitempty"`
}

// AvailablePeriods lista os meses comerciais presentes na base.
type AvailablePeriods struct {
	Periods []string `json:"periods"` // formato mm-yyyy
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
