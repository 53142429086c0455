package menuing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/clinic-admin-api/internal/domain"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/menuing/mocks"
	"github.com/vfg2006/clinic-admin-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newView(t *testing.T, nav Navigator, opts ...Option) *AdminMenuView {
	t.Helper()
	view, err := NewAdminMenuView(nav, opts...)
	require.NoError(t, err)
	return view
}

func TestAdminMenuView_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := newView(t, mocks.NewMockNavigator(ctrl))

	tree := view.Render()

	heading, ok := tree.Child(domain.NodeHeading)
	require.True(t, ok)
	assert.Equal(t, "Otras Configuraciones", heading.Text)

	subheading, ok := tree.Child(domain.NodeSubheading)
	require.True(t, ok)
	assert.NotEmpty(t, subheading.Text)

	cards := tree.Find(domain.NodeCard)
	require.Len(t, cards, 6)

	expected := []struct {
		title    string
		subtitle string
	}{
		{"Especialidades", "Gestionar especialidades médicas"},
		{"Enfermedades", "Gestionar catálogo de enfermedades"},
		{"Reportes", "Consultar reportes del sistema"},
		{"Configuración", "Ajustes generales del sistema"},
		{"Auditoría", "Revisar registros de auditoría"},
		{"Usuarios", "Gestionar usuarios y permisos"},
	}

	for i, card := range cards {
		title, ok := card.Child(domain.NodeTitle)
		require.True(t, ok)
		subtitle, ok := card.Child(domain.NodeSubtitle)
		require.True(t, ok)
		icon, ok := card.Child(domain.NodeIcon)
		require.True(t, ok)

		assert.Equal(t, expected[i].title, title.Text)
		assert.Equal(t, expected[i].subtitle, subtitle.Text)
		assert.NotEmpty(t, icon.Attr(domain.AttrName))
		assert.Empty(t, card.Attr(domain.AttrHref), "card %s não deveria ter destino", title.Text)
	}

	links := tree.Find(domain.NodeLink)
	require.Len(t, links, 1)
	assert.Equal(t, "/admin/dashboard", links[0].Attr(domain.AttrHref))

	label, ok := links[0].Child(domain.NodeLabel)
	require.True(t, ok)
	assert.Equal(t, "Volver al Dashboard", label.Text)

	_, ok = links[0].Child(domain.NodeIcon)
	assert.True(t, ok)
}

func TestAdminMenuView_RenderIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := newView(t, mocks.NewMockNavigator(ctrl))

	first := view.Render()
	second := view.Render()

	assert.Equal(t, first, second)

	// Alterar a árvore retornada não pode afetar renderizações seguintes
	first.Children[0].Text = "alterado"
	assert.Equal(t, second, view.Render())
}

func TestAdminMenuView_EntriesAreImmutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := newView(t, mocks.NewMockNavigator(ctrl))

	entries := view.Entries()
	require.Len(t, entries, 6)
	entries[0].Label = "alterado"
	entries[0].TargetRoute = "/qualquer"

	fresh := view.Entries()
	assert.Equal(t, "Especialidades", fresh[0].Label)
	assert.False(t, fresh[0].HasTarget())
	assert.Equal(t, EntryKeys(), keysOf(fresh))
}

func TestAdminMenuView_OnBackActivated(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	view := newView(t, nav)
	ctx := context.Background()

	nav.EXPECT().Navigate(ctx, "/admin/dashboard").Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		assert.NoError(t, view.OnBackActivated(ctx))
	}
}

func TestAdminMenuView_OnBackActivated_CustomDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	view := newView(t, nav, WithDashboardRoute("/painel"))

	nav.EXPECT().Navigate(gomock.Any(), "/painel").Return(nil)

	assert.NoError(t, view.OnBackActivated(context.Background()))
	assert.Equal(t, "/painel", view.Render().Find(domain.NodeLink)[0].Attr(domain.AttrHref))
}

func TestAdminMenuView_OnBackActivated_NavigatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	view := newView(t, nav)
	routeErr := errors.New("rota não encontrada")

	nav.EXPECT().Navigate(gomock.Any(), "/admin/dashboard").Return(routeErr)

	err := view.OnBackActivated(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNavigationFailed)
	assert.ErrorIs(t, err, routeErr)

	var menuErr *MenuError
	require.ErrorAs(t, err, &menuErr)
	assert.Equal(t, CodeNavigationFailed, menuErr.Code)
}

func TestAdminMenuView_OnEntryActivated(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		key    string
		expect func(nav *mocks.MockNavigator)
	}{
		{
			name:   "card sem destino não navega",
			key:    "especialidades",
			expect: func(nav *mocks.MockNavigator) {},
		},
		{
			name: "card com destino navega uma vez",
			opts: []Option{WithEntryRoutes(map[string]string{"reportes": "/admin/reportes"})},
			key:  "reportes",
			expect: func(nav *mocks.MockNavigator) {
				nav.EXPECT().Navigate(gomock.Any(), "/admin/reportes").Return(nil).Times(1)
			},
		},
		{
			name:   "rota vinculada a outro card não afeta este",
			opts:   []Option{WithEntryRoutes(map[string]string{"reportes": "/admin/reportes"})},
			key:    "usuarios",
			expect: func(nav *mocks.MockNavigator) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			nav := mocks.NewMockNavigator(ctrl)
			tt.expect(nav)

			view := newView(t, nav, tt.opts...)
			entry, err := view.Entry(tt.key)
			require.NoError(t, err)

			assert.NoError(t, view.OnEntryActivated(context.Background(), entry))
		})
	}
}

func TestAdminMenuView_BoundRouteIsRendered(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := newView(t, mocks.NewMockNavigator(ctrl), WithEntryRoutes(map[string]string{
		"auditoria": "/admin/auditoria",
	}))

	cards := view.Render().Find(domain.NodeCard)
	require.Len(t, cards, 6)
	assert.Equal(t, "/admin/auditoria", cards[4].Attr(domain.AttrHref))
	assert.Empty(t, cards[0].Attr(domain.AttrHref))
}

func TestAdminMenuView_Entry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := newView(t, mocks.NewMockNavigator(ctrl))

	_, err := view.Entry("farmacia")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	var menuErr *MenuError
	require.ErrorAs(t, err, &menuErr)
	assert.Equal(t, "farmacia", menuErr.EntryKey)
}

func TestNewAdminMenuView_InvalidOptions(t *testing.T) {
	nav := NavigatorFunc(func(ctx context.Context, path string) error { return nil })

	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"chave desconhecida", WithEntryRoutes(map[string]string{"farmacia": "/admin/farmacia"}), ErrEntryNotFound},
		{"rota relativa", WithEntryRoutes(map[string]string{"reportes": "admin/reportes"}), ErrInvalidRoute},
		{"dashboard vazio", WithDashboardRoute(""), ErrInvalidRoute},
		{"dashboard com espaço", WithDashboardRoute("/admin/ dashboard"), ErrInvalidRoute},
		{"dashboard em outro domínio", WithDashboardRoute("//evil.example"), ErrInvalidRoute},
		{"card em outro domínio", WithEntryRoutes(map[string]string{"reportes": "/\\evil.example"}), ErrInvalidRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := NewAdminMenuView(nav, tt.opt)
			assert.Nil(t, view)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewAdminMenuView_RequiresNavigator(t *testing.T) {
	view, err := NewAdminMenuView(nil)
	assert.Nil(t, view)
	assert.Error(t, err)
}

func keysOf(entries []domain.MenuEntry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestAdminMenuView_LogsWithCorrelationID(t *testing.T) {
	log.SetupTestLogger()
	original := logrus.StandardLogger().Out
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(original) })

	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	view := newView(t, nav, WithEntryRoutes(map[string]string{"reportes": "/admin/reportes"}))

	ctx, correlationID := log.WithCorrelationID(context.Background())
	nav.EXPECT().Navigate(ctx, gomock.Any()).Return(nil).Times(2)

	reportes, err := view.Entry("reportes")
	require.NoError(t, err)
	especialidades, err := view.Entry("especialidades")
	require.NoError(t, err)

	require.NoError(t, view.OnEntryActivated(ctx, reportes))
	require.NoError(t, view.OnEntryActivated(ctx, especialidades))
	require.NoError(t, view.OnBackActivated(ctx))

	output := buf.String()
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("correlation_id="+correlationID)), output)
	assert.Contains(t, output, "path=/admin/reportes")
	assert.Contains(t, output, "path=/admin/dashboard")
}
