// Package api exposes the HTTP handlers for the fitness backend.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"example.com/sweatjunkies/internal/auth"
	"example.com/sweatjunkies/internal/domain"
	"example.com/sweatjunkies/internal/observability"
)

// dateLayout is the only accepted wire format for calendar dates.
const dateLayout = "2006-01-02"

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service  *domain.Service
	sessions *auth.Signer
}

// NewHandler builds a Handler. The signer mints session tokens on
// login.
func NewHandler(service *domain.Service, sessions *auth.Signer) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/register", h.register)
	mux.HandleFunc("/api/login", h.login)
	mux.HandleFunc("/api/forgot-password", h.forgotPassword)
	mux.HandleFunc("/api/reset-password", h.resetPassword)
	mux.HandleFunc("/api/athlete/profile", h.profile)
	mux.HandleFunc("/api/activities", h.activities)
	mux.HandleFunc("/api/races", h.races)
	mux.HandleFunc("/api/user_races", h.userRaces)
	mux.HandleFunc("/api/race_participations", h.raceParticipations)
	mux.HandleFunc("/api/races_with_participants", h.racesWithParticipants)
	mux.HandleFunc("/api/athletes", h.athletes)
	mux.HandleFunc("/healthz", healthz)
	mux.HandleFunc("/", index)
}

// PublicRoute reports whether the path is served without a session
// token. Passed to the auth middleware as its Skipper.
func PublicRoute(r *http.Request) bool {
	switch r.URL.Path {
	case "/", "/healthz", "/metrics",
		"/api/register", "/api/login",
		"/api/forgot-password", "/api/reset-password",
		"/api/races_with_participants", "/api/athletes":
		return true
	}
	return r.Method == http.MethodOptions
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeMessage(w, http.StatusNotFound, "Not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<h1>Project Server</h1>"))
}

// AthleteView is the serialized athlete shape. The password hash never
// leaves the server.
type AthleteView struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Bio       string `json:"bio,omitempty"`
}

// ActivityView is the serialized activity shape; Date is YYYY-MM-DD.
type ActivityView struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	AthleteID   string `json:"athlete_id"`
}

// RaceView is the serialized race shape; Date is YYYY-MM-DD.
type RaceView struct {
	ID         string `json:"id"`
	RaceName   string `json:"race_name"`
	Date       string `json:"date"`
	Distance   string `json:"distance"`
	FinishTime string `json:"finish_time,omitempty"`
}

// ParticipationView embeds the race and athlete names into a
// participation record.
type ParticipationView struct {
	CompletionTime string `json:"completion_time,omitempty"`
	RaceName       string `json:"race_name"`
	AthleteName    string `json:"athlete_name"`
}

// RaceWithParticipantsView is a race with its participant full names,
// for the public listing.
type RaceWithParticipantsView struct {
	ID           string   `json:"id"`
	RaceName     string   `json:"race_name"`
	Date         string   `json:"date"`
	Distance     string   `json:"distance"`
	FinishTime   string   `json:"finish_time,omitempty"`
	Participants []string `json:"participants"`
}

func toAthleteView(athlete domain.Athlete) AthleteView {
	return AthleteView{
		ID:        athlete.ID,
		FirstName: athlete.FirstName,
		LastName:  athlete.LastName,
		Email:     athlete.Email,
		Bio:       athlete.Bio,
	}
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		ID:          activity.ID,
		Description: activity.Description,
		Duration:    activity.DurationMin,
		Date:        activity.Date.Format(dateLayout),
		AthleteID:   activity.AthleteID,
	}
}

func toRaceView(race domain.Race) RaceView {
	return RaceView{
		ID:         race.ID,
		RaceName:   race.RaceName,
		Date:       race.Date.Format(dateLayout),
		Distance:   race.Distance,
		FinishTime: race.FinishTime,
	}
}

func toParticipationView(detail domain.ParticipationDetail) ParticipationView {
	return ParticipationView{
		CompletionTime: detail.CompletionTime,
		RaceName:       detail.RaceName,
		AthleteName:    detail.AthleteName,
	}
}

// claims resolves the authenticated principal placed on the context by
// the auth middleware.
func claims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	c, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "missing bearer token")
		return nil, false
	}
	return c, true
}

func parseDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	observability.RecordResponse(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
