package routes

import (
	"roamly/availability"
	"roamly/comments"
	"roamly/itinerary"
	"roamly/middleware"
	"roamly/pricing"
	"roamly/ratelim"
	"roamly/trips"
	"roamly/unfurl"
	"roamly/weather"

	"github.com/julienschmidt/httprouter"
)

func AddUnfurlRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *unfurl.Handler) {
	router.POST("/api/unfurl", rl.Limit(middleware.OptionalAuth(h.Unfurl)))
}

func AddTripRoutes(router *httprouter.Router, links *trips.LinkHandler) {
	router.POST("/api/trips", middleware.Authenticate(trips.CreateTrip))
	router.GET("/api/trips", middleware.Authenticate(trips.GetTrips))
	router.GET("/api/trips/:tripid", middleware.OptionalAuth(trips.GetTrip))
	router.DELETE("/api/trips/:tripid", middleware.Authenticate(trips.DeleteTrip))
	router.GET("/api/trips/:tripid/qr", trips.ShareQR)
	router.POST("/api/trips/:tripid/links", middleware.Authenticate(links.AddLink))
}

func AddLinkRoutes(router *httprouter.Router) {
	router.PUT("/api/links/:linkid/confirm", middleware.Authenticate(trips.ConfirmLink))
	router.POST("/api/links/:linkid/vote", middleware.Authenticate(trips.VoteLink))
	router.DELETE("/api/links/:linkid", middleware.Authenticate(trips.DeleteLink))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.POST("/api/itineraries/generate", middleware.OptionalAuth(itinerary.Generate))
	router.GET("/api/itineraries/:tripid/pdf", middleware.OptionalAuth(itinerary.ExportPDF))
}

func AddCommentsRoutes(router *httprouter.Router) {
	router.POST("/api/comments/link/:linkid", middleware.Authenticate(comments.CreateComment))
	router.GET("/api/comments/link/:linkid", comments.GetComments)
	router.DELETE("/api/comments/link/:linkid/:commentid", middleware.Authenticate(comments.DeleteComment))
}

func AddPricingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *pricing.Handler) {
	router.POST("/api/estimate-price", rl.Limit(h.EstimatePrice))
}

func AddWeatherRoutes(router *httprouter.Router, h *weather.Handler) {
	router.GET("/api/weather", h.GetWeather)
}

func AddAvailabilityRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *availability.Handler) {
	router.POST("/api/availability", rl.Limit(h.Check))
}
