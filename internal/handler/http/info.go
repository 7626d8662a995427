package http

import (
	"net/http"
)

func (h *Handler) getAppInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	writeResponse(w, r, info, http.StatusOK)
}
