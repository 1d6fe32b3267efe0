package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Register mounts the reference-data and review routes directly on the API group.
func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/hotels", h.hotels)
	router.GET("/flights", h.flights)
	router.GET("/activities", h.activities)
	router.GET("/rentalcars", h.rentalCars)
	router.GET("/travelagents", h.travelAgents)
	router.GET("/reviews", h.reviews)
	router.POST("/reviews", h.createReview)
}

func (h *CatalogHandler) hotels(c *gin.Context) {
	filter := domain.HotelFilter{City: c.Query("city")}
	if raw := c.Query("minRating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, "minRating must be a number")
			return
		}
		filter.MinRating = rating
	}

	hotels, err := h.service.ListHotels(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *CatalogHandler) flights(c *gin.Context) {
	flights, err := h.service.ListFlights(c.Request.Context())
	respond(c, flights, err)
}

func (h *CatalogHandler) activities(c *gin.Context) {
	activities, err := h.service.ListActivities(c.Request.Context())
	respond(c, activities, err)
}

func (h *CatalogHandler) rentalCars(c *gin.Context) {
	cars, err := h.service.ListRentalCars(c.Request.Context())
	respond(c, cars, err)
}

func (h *CatalogHandler) travelAgents(c *gin.Context) {
	agents, err := h.service.ListTravelAgents(c.Request.Context())
	respond(c, agents, err)
}

func (h *CatalogHandler) reviews(c *gin.Context) {
	reviews, err := h.service.ListReviews(c.Request.Context(), c.Query("type"))
	respond(c, reviews, err)
}

func (h *CatalogHandler) createReview(c *gin.Context) {
	var review domain.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.service.CreateReview(c.Request.Context(), &review); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func respond(c *gin.Context, body any, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
