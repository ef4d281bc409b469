// internal/matching/handlers.go

package matching

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/johnbekele/pokojowo-web-project/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetMatches returns ranked compatible flatmates for the authenticated user.
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params := ParseFindMatchesParams(r)
	if err := utils.ValidateStruct(params); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.service.FindMatches(r.Context(), userID, params)
	if err != nil {
		respondServiceError(w, err, "Failed to find matches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, outcome)
}

// GetMatchWithUser returns the detailed compatibility analysis for one pair.
func (h *Handler) GetMatchWithUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID := mux.Vars(r)["userId"]
	if _, err := uuid.Parse(targetID); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	response, err := h.service.MatchWithUser(r.Context(), userID, targetID)
	if err != nil {
		respondServiceError(w, err, "Failed to compute compatibility")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RefreshMatches recomputes matches after a profile update.
func (h *Handler) RefreshMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	response, err := h.service.RefreshMatches(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Failed to refresh matches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStatsSummary returns matching statistics without full match details.
func (h *Handler) GetStatsSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.StatsSummary(r.Context(), userID)
	if err == ErrProfileIncomplete {
		utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"profileComplete": false,
			"message":         "Complete your profile to see matching stats",
		})
		return
	}
	if err != nil {
		respondServiceError(w, err, "Failed to compute matching stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// GetDashboard returns the tenant dashboard overview.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), userID)
	if err == ErrProfileIncomplete {
		utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"profileComplete": false,
			"message":         "Complete your profile to see dashboard stats",
		})
		return
	}
	if err != nil {
		respondServiceError(w, err, "Failed to build dashboard")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dashboard)
}

// NotifyMatches triggers match notification emails in the background.
func (h *Handler) NotifyMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// The run detaches from the request; a fresh context keeps it alive
	// after the response is written.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := h.service.NotifyMatches(ctx, userID); err != nil {
			log.Printf("matching: background notification run failed for user %s: %v", userID, err)
		}
	}()

	utils.RespondWithJSON(w, http.StatusAccepted, map[string]string{
		"message": "Match notifications are being sent",
		"status":  "processing",
	})
}

func userIDFrom(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok && userID != ""
}

func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case ErrUserNotFound:
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case ErrProfileIncomplete:
		utils.RespondWithError(w, http.StatusBadRequest, "Please complete your profile before viewing matches")
	default:
		log.Printf("matching: %s: %v", fallback, err)
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
