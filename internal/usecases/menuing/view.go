package menuing

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/clinic-admin-api/internal/domain"
	"github.com/vfg2006/clinic-admin-api/pkg/log"
)

const (
	DefaultDashboardRoute = "/admin/dashboard"

	Heading    = "Otras Configuraciones"
	Subheading = "Administra los módulos complementarios del sistema"
	BackLabel  = "Volver al Dashboard"
	BackIcon   = "arrow-left"
)

// Cards do menu em ordem de leitura da grade. Nenhum card possui destino
// por padrão; rotas só são vinculadas via WithEntryRoutes.
var adminEntries = [...]domain.MenuEntry{
	{
		Key:         "especialidades",
		Label:       "Especialidades",
		Description: "Gestionar especialidades médicas",
		IconKey:     "stethoscope",
		ColorTheme:  "blue",
	},
	{
		Key:         "enfermedades",
		Label:       "Enfermedades",
		Description: "Gestionar catálogo de enfermedades",
		IconKey:     "virus",
		ColorTheme:  "red",
	},
	{
		Key:         "reportes",
		Label:       "Reportes",
		Description: "Consultar reportes del sistema",
		IconKey:     "chart-bar",
		ColorTheme:  "green",
	},
	{
		Key:         "configuracion",
		Label:       "Configuración",
		Description: "Ajustes generales del sistema",
		IconKey:     "cog",
		ColorTheme:  "gray",
	},
	{
		Key:         "auditoria",
		Label:       "Auditoría",
		Description: "Revisar registros de auditoría",
		IconKey:     "clipboard-list",
		ColorTheme:  "purple",
	},
	{
		Key:         "usuarios",
		Label:       "Usuarios",
		Description: "Gestionar usuarios y permisos",
		IconKey:     "users",
		ColorTheme:  "orange",
	},
}

// EntryKeys retorna as chaves dos cards na ordem de exibição
func EntryKeys() []string {
	keys := make([]string, 0, len(adminEntries))
	for _, entry := range adminEntries {
		keys = append(keys, entry.Key)
	}
	return keys
}

type MenuViewer interface {
	Entries() []domain.MenuEntry
	Entry(key string) (domain.MenuEntry, error)
	DashboardRoute() string
	Render() domain.ViewNode
	OnEntryActivated(ctx context.Context, entry domain.MenuEntry) error
	OnBackActivated(ctx context.Context) error
}

// AdminMenuView é a tela "Otras Configuraciones" da área administrativa
type AdminMenuView struct {
	navigator      Navigator
	entries        [len(adminEntries)]domain.MenuEntry
	dashboardRoute string
}

type Option func(v *AdminMenuView) error

// WithEntryRoutes vincula rotas de destino aos cards, indexadas pela chave do card
func WithEntryRoutes(routes map[string]string) Option {
	return func(v *AdminMenuView) error {
		for key, route := range routes {
			if err := validateRoute(route); err != nil {
				return NewEntryError(ErrInvalidRoute, CodeInvalidRoute, key, err.Error())
			}

			idx := v.indexOf(key)
			if idx < 0 {
				return NewEntryError(ErrEntryNotFound, CodeEntryNotFound, key, fmt.Sprintf("chave desconhecida: %s", key))
			}

			v.entries[idx].TargetRoute = route
		}
		return nil
	}
}

// WithDashboardRoute substitui o destino do link de retorno
func WithDashboardRoute(route string) Option {
	return func(v *AdminMenuView) error {
		if err := validateRoute(route); err != nil {
			return NewMenuError(ErrInvalidRoute, CodeInvalidRoute, err.Error())
		}
		v.dashboardRoute = route
		return nil
	}
}

func NewAdminMenuView(navigator Navigator, opts ...Option) (*AdminMenuView, error) {
	if navigator == nil {
		return nil, NewMenuError(ErrNavigationFailed, CodeNavigationFailed, "navigator é obrigatório")
	}

	v := &AdminMenuView{
		navigator:      navigator,
		entries:        adminEntries,
		dashboardRoute: DefaultDashboardRoute,
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Entries retorna uma cópia dos cards em ordem de exibição
func (v *AdminMenuView) Entries() []domain.MenuEntry {
	entries := make([]domain.MenuEntry, len(v.entries))
	copy(entries, v.entries[:])
	return entries
}

func (v *AdminMenuView) Entry(key string) (domain.MenuEntry, error) {
	idx := v.indexOf(key)
	if idx < 0 {
		return domain.MenuEntry{}, NewEntryError(ErrEntryNotFound, CodeEntryNotFound, key, "")
	}
	return v.entries[idx], nil
}

func (v *AdminMenuView) DashboardRoute() string {
	return v.dashboardRoute
}

// Render monta a árvore visual da tela. Não possui efeitos colaterais.
func (v *AdminMenuView) Render() domain.ViewNode {
	cards := make([]domain.ViewNode, 0, len(v.entries))
	for _, entry := range v.entries {
		cards = append(cards, renderCard(entry))
	}

	return domain.ViewNode{
		Kind: domain.NodeContainer,
		Children: []domain.ViewNode{
			{Kind: domain.NodeHeading, Text: Heading},
			{Kind: domain.NodeSubheading, Text: Subheading},
			{Kind: domain.NodeGrid, Children: cards},
			{
				Kind:  domain.NodeLink,
				Attrs: map[string]string{domain.AttrHref: v.dashboardRoute},
				Children: []domain.ViewNode{
					{Kind: domain.NodeIcon, Attrs: map[string]string{domain.AttrName: BackIcon}},
					{Kind: domain.NodeLabel, Text: BackLabel},
				},
			},
		},
	}
}

func renderCard(entry domain.MenuEntry) domain.ViewNode {
	attrs := map[string]string{
		domain.AttrKey:   entry.Key,
		domain.AttrTheme: entry.ColorTheme,
	}
	if entry.HasTarget() {
		attrs[domain.AttrHref] = entry.TargetRoute
	}

	return domain.ViewNode{
		Kind:  domain.NodeCard,
		Attrs: attrs,
		Children: []domain.ViewNode{
			{Kind: domain.NodeIcon, Attrs: map[string]string{domain.AttrName: entry.IconKey}},
			{Kind: domain.NodeTitle, Text: entry.Label},
			{Kind: domain.NodeSubtitle, Text: entry.Description},
		},
	}
}

// OnEntryActivated trata a ativação de um card. Sem rota vinculada é um no-op.
func (v *AdminMenuView) OnEntryActivated(ctx context.Context, entry domain.MenuEntry) error {
	if !entry.HasTarget() {
		log.ForContext(ctx).WithField("entry", entry.Key).Debug("Card sem rota de destino, nenhuma navegação emitida")
		return nil
	}

	if err := v.navigator.Navigate(ctx, entry.TargetRoute); err != nil {
		return NewEntryError(fmt.Errorf("%w: %w", ErrNavigationFailed, err), CodeNavigationFailed, entry.Key, entry.TargetRoute)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"entry": entry.Key,
		"path":  entry.TargetRoute,
	}).Debug("Navegação solicitada a partir do card")
	return nil
}

// OnBackActivated solicita uma navegação para o dashboard a cada chamada
func (v *AdminMenuView) OnBackActivated(ctx context.Context) error {
	if err := v.navigator.Navigate(ctx, v.dashboardRoute); err != nil {
		return NewMenuError(fmt.Errorf("%w: %w", ErrNavigationFailed, err), CodeNavigationFailed, v.dashboardRoute)
	}

	log.ForContext(ctx).WithField("path", v.dashboardRoute).Debug("Navegação de retorno ao dashboard solicitada")
	return nil
}

func (v *AdminMenuView) indexOf(key string) int {
	for i, entry := range v.entries {
		if entry.Key == key {
			return i
		}
	}
	return -1
}

func validateRoute(route string) error {
	if !strings.HasPrefix(route, "/") {
		return fmt.Errorf("rota deve começar com '/': %q", route)
	}
	// "//host" e "/\host" são tratados pelos navegadores como outro domínio
	if strings.HasPrefix(route, "//") || strings.HasPrefix(route, "/\\") {
		return fmt.Errorf("rota deve ser um caminho local: %q", route)
	}
	if strings.ContainsAny(route, " \t\r\n") {
		return fmt.Errorf("rota não pode conter espaços: %q", route)
	}
	return nil
}
