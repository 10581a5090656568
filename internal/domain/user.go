package domain

import "github.com/golang-jwt/jwt/v5"

// Perfis efetivos do painel.
const (
	RoleAdmin    = 1
	RoleGestor   = 2
	RoleCorretor = 3
)

// Claims são as credenciais emitidas pelo colaborador de autenticação.
// Broker carrega o nome de corretor do usuário; para o perfil corretor as
// consultas são forçadas a broker == Broker.
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	Broker     string `json:"broker"`
	jwt.RegisteredClaims
}

// IsManager indica perfil sem auto-filtro de corretor.
func (c *Claims) IsManager() bool {
	return c.UserRoleID == RoleAdmin || c.UserRoleID == RoleGestor
}
