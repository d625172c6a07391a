package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"mptransport/models"
	"mptransport/services"
)

type CompanyProfileHandler struct {
	Service *services.CompanyProfileService
	Logger  logrus.FieldLogger
}

func (h *CompanyProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var p models.CompanyProfile
	if err := decodeJSON(w, r, &p); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	saved, err := h.Service.Save(r.Context(), p)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, "company profile saved successfully", saved)
}

func (h *CompanyProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Get(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", p)
}

type ActivityHandler struct {
	Service *services.ActivityService
	Logger  logrus.FieldLogger
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Service.List(r.Context(), q.Get("entity"), q.Get("identifier"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}
