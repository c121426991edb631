package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"roamly/db"
	"roamly/models"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// loadTrip fetches a live trip and its confirmed links.
func loadTrip(ctx context.Context, tripID string) (models.Trip, []models.VenueLink, error) {
	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{
		"tripid":  tripID,
		"deleted": bson.M{"$ne": true},
	}).Decode(&trip)
	if err != nil {
		return models.Trip{}, nil, err
	}

	links, err := utils.FindAndDecode[models.VenueLink](ctx, db.LinksCollection, bson.M{
		"tripid":       tripID,
		"is_confirmed": true,
	})
	if err != nil {
		return models.Trip{}, nil, err
	}
	return trip, links, nil
}

// POST /api/itineraries/generate
func Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		TripID string `json:"tripId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.TripID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing tripId")
		return
	}

	trip, links, err := loadTrip(ctx, body.TripID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load trip")
		return
	}

	it, err := Synthesize(trip, links)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// GET /api/itineraries/:tripid/pdf
func ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trip, links, err := loadTrip(ctx, ps.ByName("tripid"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load trip")
		return
	}

	it, err := Synthesize(trip, links)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.pdf"`)
	if err := WritePDF(w, trip, it); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render PDF")
	}
}
