package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/sweatjunkies/internal/domain"
)

func (h *Handler) races(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listRaces(w, r)
	case http.MethodPost:
		h.createRace(w, r)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
	}
}

// userRaces mirrors the race listing; the frontend dashboard calls it
// under its own path.
func (h *Handler) userRaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}
	h.listRaces(w, r)
}

func (h *Handler) listRaces(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	races, err := h.service.ListRaces(r.Context(), c.AthleteID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]RaceView, 0, len(races))
	for _, race := range races {
		views = append(views, toRaceView(race))
	}
	writeJSON(w, http.StatusOK, views)
}

// CreateRaceRequest is the payload for POST /api/races. FinishTime is
// the race's official time; CompletionTime is the athlete's own.
type CreateRaceRequest struct {
	RaceName       string `json:"race_name"`
	Date           string `json:"date"`
	Distance       string `json:"distance"`
	FinishTime     string `json:"finish_time"`
	CompletionTime string `json:"completion_time"`
}

// Validate ensures request correctness, except the date which is
// parsed separately.
func (r CreateRaceRequest) Validate() error {
	if strings.TrimSpace(r.RaceName) == "" {
		return errors.New("race_name is required")
	}
	if strings.TrimSpace(r.Distance) == "" {
		return errors.New("distance is required")
	}
	return nil
}

func (h *Handler) createRace(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	var req CreateRaceRequest
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

	race, err := h.service.CreateRace(r.Context(), c.Email, domain.CreateRaceInput{
		RaceName:       req.RaceName,
		Date:           date,
		Distance:       req.Distance,
		FinishTime:     req.FinishTime,
		CompletionTime: req.CompletionTime,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAthleteNotFound) {
			writeMessage(w, http.StatusNotFound, "Athlete not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toRaceView(*race))
}

func (h *Handler) raceParticipations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	c, ok := claims(w, r)
	if !ok {
		return
	}

	details, err := h.service.ListParticipations(r.Context(), c.AthleteID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]ParticipationView, 0, len(details))
	for _, detail := range details {
		views = append(views, toParticipationView(detail))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) racesWithParticipants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	races, err := h.service.ListRacesWithParticipants(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]RaceWithParticipantsView, 0, len(races))
	for _, race := range races {
		views = append(views, RaceWithParticipantsView{
			ID:           race.ID,
			RaceName:     race.RaceName,
			Date:         race.Date.Format(dateLayout),
			Distance:     race.Distance,
			FinishTime:   race.FinishTime,
			Participants: race.Participants,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

// CreateAthleteRequest is the payload for POST /api/athletes, the
// public collection endpoint. Unlike registration it uses snake_case
// field names and accepts a bio.
type CreateAthleteRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Bio       string `json:"bio"`
}

func (h *Handler) athletes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listAthletes(w, r)
	case http.MethodPost:
		h.createAthlete(w, r)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, "unsupported method")
	}
}

func (h *Handler) listAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := h.service.ListAthletes(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]AthleteView, 0, len(athletes))
	for _, athlete := range athletes {
		views = append(views, toAthleteView(athlete))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) createAthlete(w http.ResponseWriter, r *http.Request) {
	var req CreateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	athlete, err := h.service.CreateAthlete(r.Context(), domain.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			writeMessage(w, http.StatusBadRequest, "Email already exists")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toAthleteView(*athlete))
}
