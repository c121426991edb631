package trips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"roamly/db"
	"roamly/globals"
	"roamly/models"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(globals.UserIDKey).(string)
	return id
}

// POST /api/trips
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if trip.Name == "" || trip.StartDate == "" || trip.EndDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing name or dates")
		return
	}
	if _, err := time.Parse("2006-01-02", trip.StartDate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid start_date")
		return
	}
	if _, err := time.Parse("2006-01-02", trip.EndDate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end_date")
		return
	}
	if trip.EndDate < trip.StartDate {
		utils.RespondWithError(w, http.StatusBadRequest, "end_date precedes start_date")
		return
	}

	trip.TripID = "t-" + utils.GenerateRandomString(12)
	trip.CreatedBy = requestUserID(r)
	trip.CreatedAt = time.Now()
	trip.Deleted = false
	trip.Links = nil

	if _, err := db.TripsCollection.InsertOne(ctx, trip); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create trip")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, trip)
}

// GET /api/trips
func GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, bson.M{
		"created_by": requestUserID(r),
		"deleted":    bson.M{"$ne": true},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trips")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trips)
}

// GET /api/trips/:tripid
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tripID := ps.ByName("tripid")

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{
		"tripid":  tripID,
		"deleted": bson.M{"$ne": true},
	}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trip")
		return
	}

	links, err := utils.FindAndDecode[models.VenueLink](ctx, db.LinksCollection, bson.M{"tripid": tripID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch links")
		return
	}
	trip.Links = links

	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// DELETE /api/trips/:tripid
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.TripsCollection.UpdateOne(ctx,
		bson.M{"tripid": ps.ByName("tripid"), "created_by": requestUserID(r)},
		bson.M{"$set": bson.M{"deleted": true}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete trip")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
