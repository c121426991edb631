package trips

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"roamly/db"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/trips/:tripid/qr
//
// Returns a PNG QR code pointing at the trip's share page, for inviting
// co-travelers from a phone.
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tripID := ps.ByName("tripid")
	count, err := db.TripsCollection.CountDocuments(ctx, bson.M{
		"tripid":  tripID,
		"deleted": bson.M{"$ne": true},
	})
	if err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:5173"
	}
	shareURL := fmt.Sprintf("%s/trips/%s", base, tripID)

	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
