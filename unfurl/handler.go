package unfurl

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"roamly/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// POST /api/unfurl
func (h *Handler) Unfurl(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// the pipeline makes several external calls; give it room beyond one
	// fetch timeout
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "No url")
		return
	}

	rec := h.svc.Unfurl(ctx, body.URL)
	utils.RespondWithJSON(w, http.StatusOK, rec)
}
