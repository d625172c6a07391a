package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"mptransport/services"
)

type PDFHandler struct {
	Service *services.PDFService
	Logger  logrus.FieldLogger
}

// TransportRecordPDF generates and stores the printable note of a GR.
func (h *PDFHandler) TransportRecordPDF(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.Generate(r.Context(), chi.URLParam(r, "grNo"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "pdf generated successfully", res)
}
