package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
	Logger  logrus.FieldLogger
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	p, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, "payment recorded successfully", p)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Get(r.Context(), chi.URLParam(r, "invoiceNumber"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", p)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	p, err := h.Service.Update(r.Context(), chi.URLParam(r, "invoiceNumber"), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "payment updated successfully", p)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "invoiceNumber")
	found, err := h.Service.Delete(r.Context(), no)
	deleted(w, h.Logger, "payment", no, found, err)
}
