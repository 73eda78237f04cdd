package handlers

import (
	"errors"
	"net/http"

	"mawasim/internal/core"
	"mawasim/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// MerchantHandler is the admin CRUD surface over merchant accounts.
type MerchantHandler struct {
	Merchants *service.MerchantService
}

// ListMerchants returns merchants, optionally filtered.
// GET /api/admin/merchants?q=...
func (h *MerchantHandler) ListMerchants(e *pbCore.RequestEvent) error {
	query := e.Request.URL.Query().Get("q")

	merchants, err := h.Merchants.List(query)
	if err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, merchants)
}

// CreateMerchant registers a new merchant account.
// POST /api/admin/merchants
func (h *MerchantHandler) CreateMerchant(e *pbCore.RequestEvent) error {
	var req struct {
		core.Merchant
		Password string `json:"password"`
	}
	if err := e.BindBody(&req); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.Merchants.Create(&req.Merchant, req.Password); err != nil {
		if errors.Is(err, core.ErrInvalid) {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, req.Merchant)
}

// UpdateMerchant replaces a merchant's profile and status.
// PATCH /api/admin/merchants/{id}
func (h *MerchantHandler) UpdateMerchant(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing merchant ID"})
	}

	var merchant core.Merchant
	if err := e.BindBody(&merchant); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	merchant.ID = id

	if err := h.Merchants.Update(&merchant); err != nil {
		switch {
		case errors.Is(err, core.ErrInvalid):
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, core.ErrNotFound):
			return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, merchant)
}

// DeleteMerchant removes an account permanently.
// DELETE /api/admin/merchants/{id}
func (h *MerchantHandler) DeleteMerchant(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing merchant ID"})
	}

	if err := h.Merchants.Delete(id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, map[string]string{"message": "Merchant deleted"})
}

// ExportMerchants streams the filtered merchant list as CSV.
// GET /api/admin/merchants/export?q=...
func (h *MerchantHandler) ExportMerchants(e *pbCore.RequestEvent) error {
	query := e.Request.URL.Query().Get("q")

	data, err := h.Merchants.ExportCSV(query)
	if err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	e.Response.Header().Set("Content-Type", "text/csv; charset=utf-8")
	e.Response.Header().Set("Content-Disposition", `attachment; filename="merchants.csv"`)
	_, err = e.Response.Write(data)
	return err
}
