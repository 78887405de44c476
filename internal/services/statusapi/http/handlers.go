// Package http provides the status API transport
package http

import (
	stdhttp "net/http"

	"wifiman/internal/modkit/httpkit"
	"wifiman/internal/platform/logger"
	pstr "wifiman/internal/platform/strings"
	cdom "wifiman/internal/services/credstore/domain"
	pdom "wifiman/internal/services/provision/domain"
	"wifiman/internal/services/statusapi/domain"
)

// Register mounts status endpoints on r
func Register(r httpkit.Router, orch pdom.Port, store cdom.Port) {
	h := &handlers{orch: orch, store: store}

	httpkit.GetJSON(r, "/status", h.status)
	httpkit.GetJSON(r, "/networks", h.networks)
	httpkit.PostJSON[domain.CredentialInput](r, "/credentials", h.saveCredential)
	httpkit.PostAction(r, "/disconnect", h.disconnect)
}

type handlers struct {
	orch  pdom.Port
	store cdom.Port
}

// @Summary Provisioning state and station address
// @Tags Status
// @Produce json
// @Success 200 {object} domain.Status
// @Router /status [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	ctx := r.Context()
	snap := h.orch.State()
	out := domain.Status{
		State:      snap.State,
		Associated: h.orch.IsConnected(ctx),
		Network:    snap.Network,
		IP:         snap.IP,
		Since:      snap.Since.UTC(),
	}
	if out.Associated {
		ipc, err := h.orch.Address(ctx)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("read ip config")
		}
		if ipc.IP != "" {
			out.IP = ipc.IP
		}
		out.Netmask, out.Gateway, out.DNS = ipc.Netmask, ipc.Gateway, ipc.DNS
	}
	return out, nil
}

// @Summary Saved network names
// @Tags Status
// @Produce json
// @Success 200 {object} domain.Networks
// @Router /networks [get]
func (h *handlers) networks(r *stdhttp.Request) (any, error) {
	names := pstr.IfEmpty(h.store.Names(r.Context()), []string{})
	return domain.Networks{Networks: names}, nil
}

// @Summary Save or replace one credential
// @Tags Status
// @Accept json
// @Produce json
// @Param payload body domain.CredentialInput true "Credential"
// @Success 201 {object} domain.CredentialSaved
// @Router /credentials [post]
func (h *handlers) saveCredential(r *stdhttp.Request, in domain.CredentialInput) (any, error) {
	if err := h.store.Put(r.Context(), in.SSID, in.Password); err != nil {
		return nil, err
	}
	return domain.CredentialSaved{SSID: in.SSID}, nil
}

// @Summary Drop the station association
// @Tags Status
// @Success 204
// @Router /disconnect [post]
func (h *handlers) disconnect(r *stdhttp.Request) error {
	return h.orch.Disconnect(r.Context())
}
