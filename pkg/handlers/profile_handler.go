package handlers

import (
	"errors"
	"net/http"

	"mawasim/internal/core"
	"mawasim/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// ProfileHandler is the merchant's self-service profile surface.
type ProfileHandler struct {
	Merchants *service.MerchantService
}

// GetProfile returns the authenticated merchant's own record.
// GET /api/profile
func (h *ProfileHandler) GetProfile(e *pbCore.RequestEvent) error {
	merchant, err := h.Merchants.Get(e.Auth.Id)
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, merchant)
}

// UpdateProfile is a full-replace upsert of the merchant's own profile.
// Status and device token are not editable here; they keep their stored
// values.
// PATCH /api/profile
func (h *ProfileHandler) UpdateProfile(e *pbCore.RequestEvent) error {
	var profile core.MerchantProfile
	if err := e.BindBody(&profile); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	current, err := h.Merchants.Get(e.Auth.Id)
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	current.MerchantProfile = profile
	if err := h.Merchants.Update(current); err != nil {
		if errors.Is(err, core.ErrInvalid) {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, current)
}

// RegisterDevice stores the merchant's FCM token for event reminders.
// POST /api/profile/device
// Body: {"fcm_token": "..."}
func (h *ProfileHandler) RegisterDevice(e *pbCore.RequestEvent) error {
	var req struct {
		FCMToken string `json:"fcm_token"`
	}
	if err := e.BindBody(&req); err != nil || req.FCMToken == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "fcm_token required"})
	}

	current, err := h.Merchants.Get(e.Auth.Id)
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	current.FCMToken = req.FCMToken
	if err := h.Merchants.Update(current); err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusOK, map[string]string{"message": "Device registered"})
}
