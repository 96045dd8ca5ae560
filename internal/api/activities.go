package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/sweatjunkies/internal/domain"
)

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listActivities(w, r)
	case http.MethodPost:
		h.createActivity(w, r)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
	}
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	activities, err := h.service.ListActivities(r.Context(), c.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAthleteNotFound) {
			writeMessage(w, http.StatusNotFound, "Athlete not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]ActivityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, toActivityView(activity))
	}
	writeJSON(w, http.StatusOK, views)
}

// CreateActivityRequest is the payload for POST /api/activities.
type CreateActivityRequest struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Validate ensures request correctness, except the date which is
// parsed separately so its failure keeps the client's wording.
func (r CreateActivityRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if r.Duration <= 0 {
		return errors.New("duration must be > 0")
	}
	return nil
}

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	var req CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	activity, err := h.service.CreateActivity(r.Context(), c.Email, domain.CreateActivityInput{
		Description: req.Description,
		DurationMin: req.Duration,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAthleteNotFound) {
			writeMessage(w, http.StatusNotFound, "Athlete not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toActivityView(*activity))
}
