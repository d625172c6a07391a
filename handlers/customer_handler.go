package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/services"
)

type CustomerHandler struct {
	Service *services.CustomerService
	Logger  logrus.FieldLogger
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	c, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, "customer created successfully", c)
}

// Lookup finds the customer a booking form party name refers to.
func (h *CustomerHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.Lookup(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", c)
}

func (h *CustomerHandler) Names(w http.ResponseWriter, r *http.Request) {
	names, err := h.Service.Names(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", names)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := required("q", r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	list, err := h.Service.Search(r.Context(), q)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	c, err := h.Service.Update(r.Context(), chi.URLParam(r, "name"), req)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "customer updated successfully", c)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	found, err := h.Service.Delete(r.Context(), name)
	deleted(w, h.Logger, "customer", name, found, err)
}
