package menuing

import "context"

//go:generate mockgen -source=navigator.go -destination=mocks/navigator.go -package=mocks

// Navigator é o colaborador de roteamento que atende pedidos de navegação
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// NavigatorFunc adapta uma função comum para a interface Navigator
type NavigatorFunc func(ctx context.Context, path string) error

func (f NavigatorFunc) Navigate(ctx context.Context, path string) error {
	return f(ctx, path)
}
