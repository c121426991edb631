package comments

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"roamly/db"
	"roamly/globals"
	"roamly/models"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxCommentLength = 2000

// POST /api/comments/link/:linkid
func CreateComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	body.Content = strings.TrimSpace(body.Content)
	if body.Content == "" || len(body.Content) > maxCommentLength {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment must be 1-2000 characters")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	now := time.Now()
	comment := models.Comment{
		ID:        "c-" + utils.GenerateRandomString(12),
		LinkID:    ps.ByName("linkid"),
		CreatedBy: userID,
		Content:   body.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.CommentsCollection.InsertOne(ctx, comment); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save comment")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, comment)
}

// GET /api/comments/link/:linkid
func GetComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := db.CommentsCollection.Find(ctx,
		bson.M{"linkid": ps.ByName("linkid")},
		options.Find().SetSort(bson.M{"created_at": 1}),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, comments)
}

// DELETE /api/comments/link/:linkid/:commentid
func DeleteComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	res, err := db.CommentsCollection.DeleteOne(ctx, bson.M{
		"commentid":  ps.ByName("commentid"),
		"linkid":     ps.ByName("linkid"),
		"created_by": userID,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete comment")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Comment not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
