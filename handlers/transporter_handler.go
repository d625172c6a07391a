package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/services"
)

type TransporterHandler struct {
	Service *services.TransporterService
	Logger  logrus.FieldLogger
}

func (h *TransporterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TransporterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	t, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, "transporter created successfully", t)
}

func (h *TransporterHandler) Search(w http.ResponseWriter, r *http.Request) {
	t, err := h.Service.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", t)
}

func (h *TransporterHandler) VehicleNumbers(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.VehicleNumbers(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *TransporterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.TransporterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	t, err := h.Service.Update(r.Context(), chi.URLParam(r, "vehicleNumber"), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "transporter updated successfully", t)
}

func (h *TransporterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vehicle := chi.URLParam(r, "vehicleNumber")
	found, err := h.Service.Delete(r.Context(), vehicle)
	deleted(w, h.Logger, "transporter", vehicle, found, err)
}
