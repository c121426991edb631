package trips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"roamly/db"
	"roamly/models"
	"roamly/unfurl"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LinkHandler owns the link endpoints that need the unfurl pipeline.
type LinkHandler struct {
	svc *unfurl.Service
}

func NewLinkHandler(svc *unfurl.Service) *LinkHandler {
	return &LinkHandler{svc: svc}
}

// POST /api/trips/:tripid/links
func (h *LinkHandler) AddLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	tripID := ps.ByName("tripid")

	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "No url")
		return
	}

	count, err := db.TripsCollection.CountDocuments(ctx, bson.M{
		"tripid":  tripID,
		"deleted": bson.M{"$ne": true},
	})
	if err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	rec := h.svc.Unfurl(ctx, body.URL)
	rec.LinkID = "l-" + utils.GenerateRandomString(12)
	rec.TripID = tripID
	rec.AddedBy = requestUserID(r)
	rec.CreatedAt = time.Now()

	if _, err := db.LinksCollection.InsertOne(ctx, rec); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save link")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rec)
}

// PUT /api/links/:linkid/confirm
func ConfirmLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	res, err := db.LinksCollection.UpdateOne(ctx,
		bson.M{"linkid": ps.ByName("linkid")},
		bson.M{"$set": bson.M{"is_confirmed": body.Confirmed}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update link")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Link not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"linkid": ps.ByName("linkid"), "is_confirmed": body.Confirmed})
}

// DELETE /api/links/:linkid
func DeleteLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	linkID := ps.ByName("linkid")
	res, err := db.LinksCollection.DeleteOne(ctx, bson.M{"linkid": linkID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete link")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Link not found")
		return
	}
	// votes are meaningless without their link
	db.VotesCollection.DeleteMany(ctx, bson.M{"linkid": linkID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// POST /api/links/:linkid/vote
//
// Voting the same way twice retracts the vote; voting the other way
// switches it.
func VoteLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	linkID := ps.ByName("linkid")
	userID := requestUserID(r)

	var body struct {
		Vote string `json:"vote"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || (body.Vote != "up" && body.Vote != "down") {
		utils.RespondWithError(w, http.StatusBadRequest, "Vote must be up or down")
		return
	}

	filter := bson.M{"linkid": linkID, "user_id": userID}

	var existing models.Vote
	err := db.VotesCollection.FindOne(ctx, filter).Decode(&existing)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		_, err = db.VotesCollection.InsertOne(ctx, models.Vote{
			LinkID:    linkID,
			UserID:    userID,
			Vote:      body.Vote,
			CreatedAt: time.Now(),
		})
	case err == nil && existing.Vote == body.Vote:
		_, err = db.VotesCollection.DeleteOne(ctx, filter)
	case err == nil:
		_, err = db.VotesCollection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"vote": body.Vote}})
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	up, err := db.VotesCollection.CountDocuments(ctx, bson.M{"linkid": linkID, "vote": "up"})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to tally votes")
		return
	}
	down, err := db.VotesCollection.CountDocuments(ctx, bson.M{"linkid": linkID, "vote": "down"})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to tally votes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"linkid": linkID, "up": up, "down": down})
}
