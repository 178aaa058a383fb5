package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/usecase/places"
)

type PlacesHandler struct {
	placesUseCase *places.PlacesUseCase
}

func NewPlacesHandler(placesUseCase *places.PlacesUseCase) *PlacesHandler {
	return &PlacesHandler{placesUseCase: placesUseCase}
}

func parseLocation(c *gin.Context) (domain.Location, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lat"})
		return domain.Location{}, false
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lng"})
		return domain.Location{}, false
	}
	return domain.Location{Latitude: lat, Longitude: lng}, true
}

// Nearby returns ranked places around the given coordinates
// @Summary Nearby places
// @Tags places
// @Security BearerAuth
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {array} domain.Place
// @Failure 400 {object} ErrorResponse
// @Router /places/nearby [get]
func (h *PlacesHandler) Nearby(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	loc, ok := parseLocation(c)
	if !ok {
		return
	}

	ranked, err := h.placesUseCase.GetNearbyRanked(c.Request.Context(), user, loc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ranked)
}

// TodayRoute returns the three-stop daily itinerary
// @Summary Today's route
// @Tags places
// @Security BearerAuth
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {array} places.RouteStop
// @Failure 422 {object} ErrorResponse
// @Router /places/route/today [get]
func (h *PlacesHandler) TodayRoute(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	loc, ok := parseLocation(c)
	if !ok {
		return
	}

	route, err := h.placesUseCase.GetTodayRoute(c.Request.Context(), user, loc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

// Details returns provider details for one place
// @Summary Place details
// @Tags places
// @Security BearerAuth
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {object} domain.PlaceDetails
// @Failure 503 {object} ErrorResponse
// @Router /places/{place_id} [get]
func (h *PlacesHandler) Details(c *gin.Context) {
	details, err := h.placesUseCase.GetDetails(c.Request.Context(), c.Param("place_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}
