package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"example.com/sweatjunkies/internal/domain"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getProfile(w, r)
	case http.MethodPut:
		h.updateProfile(w, r)
	case http.MethodDelete:
		h.deleteProfile(w, r)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
	}
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	athlete, err := h.service.GetProfile(r.Context(), c.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAthleteNotFound) {
			writeMessage(w, http.StatusNotFound, "Athlete profile not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toAthleteView(*athlete))
}

// UpdateProfileRequest is the payload for PUT /api/athlete/profile.
// Absent fields keep their current value; only first name and email
// are mutable here.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	Email     *string `json:"email"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	athlete, err := h.service.UpdateProfile(r.Context(), c.Email, domain.UpdateProfileInput{
		FirstName: req.FirstName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAthleteNotFound) {
			writeMessage(w, http.StatusNotFound, "Athlete profile not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toAthleteView(*athlete))
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(r.Context(), c.Email); err != nil {
		if errors.Is(err, domain.ErrAthleteNotFound) {
			writeMessage(w, http.StatusNotFound, "Athlete profile not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Athlete profile deleted")
}
