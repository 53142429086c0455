package handler

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-admin-api/internal/domain"
	"github.com/vfg2006/clinic-admin-api/internal/ui"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/menuing"
	"github.com/vfg2006/clinic-admin-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-admin-api/pkg/log"
)

const (
	AdminMenuPagePath     = "/admin/menu"
	AdminMenuPath         = "/v1/admin/menu"
	AdminMenuEntriesPath  = "/v1/admin/menu/entries"
	AdminMenuActivatePath = "/v1/admin/menu/entries/:key/activate"
	AdminMenuBackPath     = "/v1/admin/menu/back"
)

type NavigationResponse struct {
	Navigation domain.NavigationRequest `json:"navigation"`
}

type EntriesResponse struct {
	Entries []domain.MenuEntry `json:"entries"`
}

func entryActionPath(key string) string {
	return strings.Replace(AdminMenuActivatePath, ":key", key, 1)
}

// GetAdminMenuPage renderiza a tela "Otras Configuraciones" em HTML
func GetAdminMenuPage(view menuing.MenuViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		err := ui.Render(&buf, view.Render(), ui.Actions{
			EntryAction: entryActionPath,
			BackAction:  AdminMenuBackPath,
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao renderizar menu administrativo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar página do menu")
		}
	}
}

// GetAdminMenu retorna a árvore visual do menu em JSON
func GetAdminMenu(view menuing.MenuViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, view.Render())
	}
}

// ListAdminMenuEntries retorna os cards do menu em ordem de exibição
func ListAdminMenuEntries(view menuing.MenuViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, EntriesResponse{Entries: view.Entries()})
	}
}

// ActivateAdminMenuEntry trata a ativação de um card
func ActivateAdminMenuEntry(view menuing.MenuViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := httprouter.ParamsFromContext(r.Context()).ByName("key")
		if key == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Chave do card não fornecida", nil)
			return
		}

		entry, err := view.Entry(key)
		if err != nil {
			handleMenuError(w, r, err)
			return
		}

		ctx, rec := WithNavigationRecorder(r.Context())
		if err := view.OnEntryActivated(ctx, entry); err != nil {
			handleMenuError(w, r, err)
			return
		}

		respondNavigation(w, r, rec.Requests())
	}
}

// ActivateAdminMenuBack trata o link "Volver al Dashboard"
func ActivateAdminMenuBack(view menuing.MenuViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, rec := WithNavigationRecorder(r.Context())
		if err := view.OnBackActivated(ctx); err != nil {
			handleMenuError(w, r, err)
			return
		}

		respondNavigation(w, r, rec.Requests())
	}
}

// respondNavigation responde com redirect para formulários HTML e com JSON
// para clientes da API. Sem pedido de navegação a resposta é 204.
func respondNavigation(w http.ResponseWriter, r *http.Request, requests []domain.NavigationRequest) {
	if len(requests) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	last := requests[len(requests)-1]
	if wantsHTML(r) {
		http.Redirect(w, r, last.Path, http.StatusSeeOther)
		return
	}

	writeJSON(w, http.StatusOK, NavigationResponse{Navigation: last})
}

func wantsHTML(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func handleMenuError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var menuErr *menuing.MenuError
	if errors.As(err, &menuErr) {
		logger = logger.WithField("entry", menuErr.EntryKey)
	}

	switch {
	case errors.Is(err, menuing.ErrEntryNotFound):
		logger.Warn("Card de menu inexistente")
		apiErrors.WriteError(w, apiErrors.ErrMenuEntryNotFound, "Card não encontrado", nil)
	case errors.Is(err, menuing.ErrNavigationFailed):
		logger.Error("Colaborador de roteamento falhou")
		apiErrors.WriteError(w, apiErrors.ErrMenuNavigationFailed, "Não foi possível navegar", nil)
	default:
		logger.Error("Erro inesperado no menu administrativo")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
