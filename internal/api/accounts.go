package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"example.com/sweatjunkies/internal/domain"
)

// RegisterRequest is the payload for POST /api/register. Field names
// match the frontend's camelCase registration form.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	_, err := h.service.Register(r.Context(), domain.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			writeMessage(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, domain.ErrEmailExists):
			writeMessage(w, http.StatusBadRequest, "Email already exists")
		default:
			writeMessage(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// LoginRequest is the payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the serialized athlete.
type LoginResponse struct {
	Token string      `json:"token"`
	User  AthleteView `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	athlete, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// The two failure messages stay distinct on purpose; the
		// frontend surfaces them separately.
		switch {
		case errors.Is(err, domain.ErrEmailNotFound):
			writeMessage(w, http.StatusUnauthorized, "Email not found")
		case errors.Is(err, domain.ErrIncorrectPassword):
			writeMessage(w, http.StatusUnauthorized, "Incorrect password")
		default:
			writeMessage(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	token, err := h.sessions.IssueSession(athlete.Email, athlete.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: toAthleteView(*athlete)})
}

// ForgotPasswordRequest is the payload for POST /api/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrEmailNotFound) {
			writeMessage(w, http.StatusNotFound, "Email not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Password reset email sent")
}

// ResetPasswordRequest is the payload for POST /api/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidResetToken):
			writeMessage(w, http.StatusBadRequest, "The reset link is invalid or has expired.")
		case errors.Is(err, domain.ErrAthleteNotFound):
			writeMessage(w, http.StatusNotFound, "User not found.")
		default:
			writeMessage(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeMessage(w, http.StatusOK, "Your password has been updated!")
}
