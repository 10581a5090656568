// Package classifying mapeia o texto livre de situação da planilha para o
// conjunto canônico de status.
package classifying

import (
	"strings"

	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

type rule struct {
	token  string
	status domain.Status
}

// A ordem é semântica: DESIST e PEND precisam vir antes dos tokens de venda
// e aprovação para que "VENDA GERADA - DESISTIU" classifique como desistência.
// Os tokens já estão sem acento; a entrada é desacentuada antes da comparação.
var rules = []rule{
	{"DESIST", domain.StatusDesistiu},
	{"PEND", domain.StatusPendencia},
	{"VENDA GERADA", domain.StatusVendaGerada},
	{"VENDA INFORMADA", domain.StatusVendaInformada},
	{"REANALISE", domain.StatusReanalise},
	{"EM ANALISE", domain.StatusEmAnalise},
	{"APROV", domain.StatusAprovado},
	{"REPROV", domain.StatusReprovado},
}

// Classify resolve a situação em texto livre para exatamente um status
// canônico. OTHER é o coletor: a classificação é total.
func Classify(rawSituation string) domain.Status {
	text := utils.FoldAccents(utils.NormalizeUpper(rawSituation))
	text = strings.ReplaceAll(text, "_", " ")

	for _, r := range rules {
		if strings.Contains(text, r.token) {
			return r.status
		}
	}

	return domain.StatusOther
}

// IsExactApproval aplica a definição estrita de aprovação usada por algumas
// páginas do painel: apenas o texto exato "APROVAÇÃO" conta. A permissiva
// (qualquer coisa contendo "APROV") é a regra 7 do Classify.
func IsExactApproval(rawSituation string) bool {
	return utils.FoldAccents(utils.NormalizeUpper(rawSituation)) == "APROVACAO"
}

// CountsAsApproval decide se um evento entra no contador de aprovações sob a
// política configurada.
func CountsAsApproval(e domain.Event, policy domain.ApprovalPolicy) bool {
	if e.Status != domain.StatusAprovado {
		return false
	}
	if policy == domain.ApprovalExact {
		return IsExactApproval(e.RawSituation)
	}
	return true
}
