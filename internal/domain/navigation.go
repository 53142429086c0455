package domain

import "time"

// NavigationRequest representa um pedido de troca de tela emitido pelo menu
type NavigationRequest struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	RequestedAt time.Time `json:"requested_at"`
}
