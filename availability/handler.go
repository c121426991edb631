package availability

import (
	"context"
	"encoding/json"
	"errors"
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

// POST /api/availability
func (h *Handler) Check(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "No url")
		return
	}

	resp, err := h.svc.Check(ctx, req)
	if err != nil {
		if errors.Is(err, ErrUnsupportedProvider) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Reservation provider not supported")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
