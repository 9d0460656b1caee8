package server

import (
	"net/http"

	"autobid-server/internal/auth"
	"autobid-server/internal/bidding"
	"autobid-server/internal/catalog"
	handler "autobid-server/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(catalogService *catalog.CatalogService, biddingService *bidding.BiddingService, sessions *auth.SessionManager, allowedOrigins []string) *gin.Engine {
	// unknown body fields are rejected at bind time
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CORSMiddleware(allowedOrigins))

	carHandler := handler.NewCarHandler(catalogService)
	bidHandler := handler.NewBidHandler(biddingService)
	sessionHandler := handler.NewSessionHandler(sessions)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "AutoBid API running")
	})

	router.POST("/jwt", sessionHandler.CreateSessionHandler)
	router.POST("/logout", sessionHandler.LogoutHandler)

	// public catalog reads
	router.GET("/cars", carHandler.ListCarsHandler)
	router.GET("/all-cars", carHandler.SearchCarsHandler)
	router.GET("/cars-count", carHandler.CountCarsHandler)
	router.GET("/car/:id", carHandler.GetCarHandler)

	session := router.Group("", RequireSession(sessions))
	{
		session.POST("/car", carHandler.CreateCarHandler)
		session.GET("/cars/:email", carHandler.MyCarsHandler)
		session.PUT("/car/:id", carHandler.UpdateCarHandler)
		session.DELETE("/car/:id", carHandler.DeleteCarHandler)

		session.POST("/bid", bidHandler.PlaceBidHandler)
		session.GET("/my-bids/:email", bidHandler.MyBidsHandler)
		session.GET("/my-request/:email", bidHandler.BidRequestsHandler)
		session.PATCH("/bid/:id", bidHandler.TransitionBidHandler)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found", "path": c.Request.URL.Path})
	})

	return router
}
