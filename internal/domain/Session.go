package domain

import "time"

// SelectionAll é o valor de seleção que representa todos os KOLs
const SelectionAll = "All"

// Session é o contexto de uma sessão de usuário, passado explicitamente para cada visão
type Session struct {
	ID          string    `json:"id"`
	SelectedKol string    `json:"selected_kol"` // Nome do KOL, vazio significa todos
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AllSelected indica que nenhum KOL específico está selecionado
func (s Session) AllSelected() bool {
	return s.SelectedKol == "" || s.SelectedKol == SelectionAll
}

// Selection retorna o rótulo da seleção atual
func (s Session) Selection() string {
	if s.AllSelected() {
		return SelectionAll
	}
	return s.SelectedKol
}

// SessionView é a resposta do endpoint de sessão
type SessionView struct {
	Session Session  `json:"session"`
	Options []string `json:"options"`
}
