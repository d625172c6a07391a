package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/services"
)

type ChallanHandler struct {
	Service *services.ChallanService
	Logger  logrus.FieldLogger
}

func (h *ChallanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ChallanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	c, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, "challan created successfully", c)
}

func (h *ChallanHandler) List(w http.ResponseWriter, r *http.Request) {
	if no := r.URL.Query().Get("challan_no"); no != "" {
		c, err := h.Service.Get(r.Context(), no)
		if err != nil {
			respondError(w, h.Logger, err)
			return
		}
		ok(w, http.StatusOK, "", c)
		return
	}
	list, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *ChallanHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.ChallanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	c, err := h.Service.Update(r.Context(), chi.URLParam(r, "challanNo"), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "challan updated successfully", c)
}

func (h *ChallanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "challanNo")
	found, err := h.Service.Delete(r.Context(), no)
	deleted(w, h.Logger, "challan", no, found, err)
}

type CrossingHandler struct {
	Service *services.CrossingService
	Logger  logrus.FieldLogger
}

func (h *CrossingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CrossingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	cx, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, "crossing statement created successfully", cx)
}

func (h *CrossingHandler) List(w http.ResponseWriter, r *http.Request) {
	if no := r.URL.Query().Get("cx_number"); no != "" {
		cx, err := h.Service.Get(r.Context(), no)
		if err != nil {
			respondError(w, h.Logger, err)
			return
		}
		ok(w, http.StatusOK, "", cx)
		return
	}
	list, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *CrossingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.CrossingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	cx, err := h.Service.Update(r.Context(), chi.URLParam(r, "cxNumber"), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "crossing statement updated successfully", cx)
}

func (h *CrossingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "cxNumber")
	found, err := h.Service.Delete(r.Context(), no)
	deleted(w, h.Logger, "crossing statement", no, found, err)
}
