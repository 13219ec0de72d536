package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tripmate/internal/handler"
	"tripmate/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	TripHandler      *handler.TripHandler
	FlightHandler    *handler.FlightHandler
	LodgingHandler   *handler.LodgingHandler
	TourHandler      *handler.TourHandler
	RentalHandler    *handler.RentalHandler
	ItineraryHandler *handler.ItineraryHandler
	InviteHandler    *handler.InviteHandler
	ReportHandler    *handler.ReportHandler
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Trip and roster routes.
		trips := v1.Group("/trips")
		{
			trips.POST("", deps.TripHandler.CreateTrip)
			trips.GET("", deps.TripHandler.GetAll)
			trips.GET("/:id", deps.TripHandler.GetTrip)
			trips.PUT("/:id", deps.TripHandler.UpdateTrip)

			trips.GET("/:id/members", deps.TripHandler.ListMembers)
			trips.POST("/:id/members", deps.TripHandler.AddMember)
			trips.DELETE("/:id/members/:memberId", deps.TripHandler.RemoveMember)

			// Booking routes, one block per cost category.
			trips.POST("/:id/flights", deps.FlightHandler.Create)
			trips.GET("/:id/flights", deps.FlightHandler.List)
			trips.PUT("/:id/flights/:bookingId", deps.FlightHandler.Update)
			trips.DELETE("/:id/flights/:bookingId", deps.FlightHandler.Delete)
			trips.POST("/:id/flights/parse", deps.FlightHandler.ParseConfirmation)

			trips.POST("/:id/lodgings", deps.LodgingHandler.Create)
			trips.GET("/:id/lodgings", deps.LodgingHandler.List)
			trips.PUT("/:id/lodgings/:bookingId", deps.LodgingHandler.Update)
			trips.DELETE("/:id/lodgings/:bookingId", deps.LodgingHandler.Delete)

			trips.POST("/:id/tours", deps.TourHandler.Create)
			trips.GET("/:id/tours", deps.TourHandler.List)
			trips.PUT("/:id/tours/:bookingId", deps.TourHandler.Update)
			trips.DELETE("/:id/tours/:bookingId", deps.TourHandler.Delete)

			trips.POST("/:id/rentals", deps.RentalHandler.Create)
			trips.GET("/:id/rentals", deps.RentalHandler.List)
			trips.PUT("/:id/rentals/:bookingId", deps.RentalHandler.Update)
			trips.DELETE("/:id/rentals/:bookingId", deps.RentalHandler.Delete)

			// Itinerary routes.
			trips.POST("/:id/itinerary", deps.ItineraryHandler.Create)
			trips.GET("/:id/itinerary", deps.ItineraryHandler.List)
			trips.PUT("/:id/itinerary/:entryId", deps.ItineraryHandler.Update)
			trips.DELETE("/:id/itinerary/:entryId", deps.ItineraryHandler.Delete)
			trips.GET("/:id/itinerary/:entryId/nearby", deps.ItineraryHandler.Nearby)

			// Cost report.
			trips.GET("/:id/report", deps.ReportHandler.Get)

			// Invite issuance.
			trips.POST("/:id/invites", deps.InviteHandler.Create)
		}

		// Invite lookup and redemption by code.
		invites := v1.Group("/invites")
		{
			invites.GET("/:code", deps.InviteHandler.Get)
			invites.POST("/:code/redeem", deps.InviteHandler.Redeem)
		}
	}

	return router
}
