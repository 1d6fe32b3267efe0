package api

import (
	"net/http"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/service/travelers"
	"github.com/gin-gonic/gin"
)

type TravelerHandler struct {
	service travelers.TravelerUseCase
}

type createTravelerRequest struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"eMail"`
	PhoneNumber string `json:"phoneNumber"`
}

func NewTravelerHandler(service travelers.TravelerUseCase) *TravelerHandler {
	return &TravelerHandler{service: service}
}

// Register mounts the traveler routes on the /travelers group.
func (h *TravelerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.delete)
	router.GET("/:id/notifications", h.notifications)
}

func (h *TravelerHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TravelerHandler) create(c *gin.Context) {
	var req createTravelerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	traveler := &domain.Traveler{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.service.Create(c.Request.Context(), traveler); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, traveler)
}

func (h *TravelerHandler) get(c *gin.Context) {
	traveler, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, traveler)
}

func (h *TravelerHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TravelerHandler) notifications(c *gin.Context) {
	list, err := h.service.Notifications(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type ReservationHandler struct {
	service travelers.TravelerUseCase
}

func NewReservationHandler(service travelers.TravelerUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

func (h *ReservationHandler) list(c *gin.Context) {
	list, err := h.service.Reservations(c.Request.Context(), c.Query("customerID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
