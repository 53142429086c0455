package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/clinic-admin-api/internal/domain"
	"github.com/vfg2006/clinic-admin-api/pkg/log"
	"github.com/vfg2006/clinic-admin-api/pkg/utils"
)

var ErrNoNavigationContext = errors.New("requisição sem contexto de navegação")

type navigationKey struct{}

// navigationRecorder acumula os pedidos de navegação de uma única requisição HTTP
type navigationRecorder struct {
	mu       sync.Mutex
	requests []domain.NavigationRequest
}

func (r *navigationRecorder) add(req domain.NavigationRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
}

func (r *navigationRecorder) Requests() []domain.NavigationRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.NavigationRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

// WithNavigationRecorder prepara o contexto para receber pedidos de navegação
func WithNavigationRecorder(ctx context.Context) (context.Context, *navigationRecorder) {
	rec := &navigationRecorder{}
	return context.WithValue(ctx, navigationKey{}, rec), rec
}

// HTTPNavigator atende pedidos de navegação registrando-os no contexto da
// requisição; a resposta HTTP (redirect ou JSON) é montada pelo handler.
type HTTPNavigator struct {
	generateID func() (string, error)
	now        func() time.Time
}

func NewHTTPNavigator() *HTTPNavigator {
	return &HTTPNavigator{
		generateID: utils.GenerateID,
		now:        time.Now,
	}
}

func (n *HTTPNavigator) Navigate(ctx context.Context, path string) error {
	rec, ok := ctx.Value(navigationKey{}).(*navigationRecorder)
	if !ok {
		return ErrNoNavigationContext
	}

	id, err := n.generateID()
	if err != nil {
		return err
	}

	rec.add(domain.NavigationRequest{
		ID:          id,
		Path:        path,
		RequestedAt: n.now().UTC(),
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"navigation_id": id,
		"path":          path,
	}).Debug("Pedido de navegação registrado")

	return nil
}
