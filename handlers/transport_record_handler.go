package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/services"
)

type TransportRecordHandler struct {
	Service *services.TransportRecordService
	Logger  logrus.FieldLogger
}

func (h *TransportRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TransportRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	rec, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, "transport record created successfully", rec)
}

// List returns one record when ?grNo is given, otherwise all of them.
func (h *TransportRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	if grNo := r.URL.Query().Get("grNo"); grNo != "" {
		rec, err := h.Service.Get(r.Context(), grNo)
		if err != nil {
			respondError(w, h.Logger, err)
			return
		}
		ok(w, http.StatusOK, "", rec)
		return
	}
	list, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *TransportRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.Get(r.Context(), chi.URLParam(r, "grNo"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", rec)
}

func (h *TransportRecordHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Service.History(r.Context(), q.Get("consignor"), q.Get("consignee"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *TransportRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.TransportRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	rec, err := h.Service.Update(r.Context(), chi.URLParam(r, "grNo"), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "transport record updated successfully", rec)
}

func (h *TransportRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	grNo := chi.URLParam(r, "grNo")
	found, err := h.Service.Delete(r.Context(), grNo)
	deleted(w, h.Logger, "transport record", grNo, found, err)
}

func (h *TransportRecordHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Service.Invoice(r.Context(), chi.URLParam(r, "grNo"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", inv)
}
