package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"roamly/extract"
	"roamly/fetcher"
	"roamly/models"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler answers price-estimate requests: live search first, static
// estimator when the web gives nothing usable.
type Handler struct {
	fetch *fetcher.Client
}

func NewHandler(f *fetcher.Client) *Handler {
	return &Handler{fetch: f}
}

// POST /api/estimate-price
func (h *Handler) EstimatePrice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var body struct {
		Title       string `json:"title"`
		Category    string `json:"category"`
		Location    string `json:"location"`
		PriceRange  string `json:"priceRange"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Category == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing category")
		return
	}

	if body.Title != "" {
		if est, ok := h.searchEstimate(ctx, body.Title, body.Location, body.Category); ok {
			utils.RespondWithJSON(w, http.StatusOK, est)
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK,
		Estimate(body.Category, body.Title, body.Description, body.PriceRange))
}

// searchEstimate runs the venue's search queries in order and mines each
// result page for a plausible dollar figure; first hit wins.
func (h *Handler) searchEstimate(ctx context.Context, title, location, category string) (models.PriceEstimate, bool) {
	kind := VenueKind(category)
	for _, query := range BuildQueries(title, location, kind) {
		body := h.fetch.SearchHTML(ctx, query)
		if body == "" {
			continue
		}
		corpus := strings.ToLower(extract.StripTags(body))
		if p := ExtractPriceFromText(corpus, kind); p != nil {
			return models.PriceEstimate{
				EstimatedCost: *p,
				Confidence:    "high",
				Source:        "web_search",
				Explanation:   fmt.Sprintf("Found $%d in search results for %s", *p, title),
			}, true
		}
	}
	return models.PriceEstimate{}, false
}
