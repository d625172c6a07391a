package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/services"
)

type StatusHandler struct {
	Service *services.StatusService
	Logger  logrus.FieldLogger
}

// Create answers 201 for a new row and 200 with the stored row when the
// GR already has one.
func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	st, created, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	if !created {
		ok(w, http.StatusOK, "status already exists", st)
		return
	}
	ok(w, http.StatusCreated, "status created successfully", st)
}

func (h *StatusHandler) List(w http.ResponseWriter, r *http.Request) {
	if grNo := r.URL.Query().Get("gr_no"); grNo != "" {
		st, err := h.Service.Get(r.Context(), grNo)
		if err != nil {
			respondError(w, h.Logger, err)
			return
		}
		ok(w, http.StatusOK, "", st)
		return
	}
	list, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *StatusHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.StatusPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	st, err := h.Service.Update(r.Context(), chi.URLParam(r, "grNo"), patch)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "status updated successfully", st)
}

func (h *StatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	grNo := chi.URLParam(r, "grNo")
	found, err := h.Service.Delete(r.Context(), grNo)
	deleted(w, h.Logger, "status", grNo, found, err)
}
