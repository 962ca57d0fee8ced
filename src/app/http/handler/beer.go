package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"beerfactory/src/app/http/dto"
	"beerfactory/src/app/http/mapper"
	"beerfactory/src/app/http/response"
	"beerfactory/src/app/middleware"
	"beerfactory/src/core/domain"
	"beerfactory/src/core/usecase"
)

// BeerHandler handles the beer CRUD endpoints. It owns the transfer-shape
// boundary: requests are mapped to domain values before reaching the
// service and domain values are mapped back for the response.
type BeerHandler struct {
	beerService *usecase.BeerService
	beers       mapper.BeerMapper
}

func NewBeerHandler(beerService *usecase.BeerService, beers mapper.BeerMapper) *BeerHandler {
	return &BeerHandler{beerService: beerService, beers: beers}
}

// GetBeerByID returns a single beer.
// GET /api/v1/beer/:beerId
//
// The beer DTO is the response body itself, not wrapped in an envelope;
// its field paths are a documented contract.
func (h *BeerHandler) GetBeerByID(c *gin.Context) {
	id, ok := parseBeerID(c)
	if !ok {
		return
	}

	beer, err := h.beerService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	c.JSON(http.StatusOK, h.beers.ToDto(beer))
}

// SaveNewBeer creates a beer.
// POST /api/v1/beer
//
// Responds 201 with a Location header and no body. Read-only payload
// fields (id, version, dates, quantityOnHand) are ignored.
func (h *BeerHandler) SaveNewBeer(c *gin.Context) {
	beer, ok := bindBeer(c, h.beers)
	if !ok {
		return
	}

	id, err := h.beerService.Create(c.Request.Context(), beer)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/beer/%s", id))
	c.Status(http.StatusCreated)
}

// UpdateBeerByID replaces a beer.
// PUT /api/v1/beer/:beerId
//
// Responds 204 with an empty body.
func (h *BeerHandler) UpdateBeerByID(c *gin.Context) {
	id, ok := parseBeerID(c)
	if !ok {
		return
	}

	beer, ok := bindBeer(c, h.beers)
	if !ok {
		return
	}

	if err := h.beerService.Update(c.Request.Context(), id, beer); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.NoContent(c)
}

// DeleteBeerByID removes a beer.
// DELETE /api/v1/beer/:beerId
func (h *BeerHandler) DeleteBeerByID(c *gin.Context) {
	id, ok := parseBeerID(c)
	if !ok {
		return
	}

	if err := h.beerService.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.NoContent(c)
}

// bindBeer binds and validates the request body, then maps it to a domain
// value. It writes the error response itself and returns ok=false on
// failure.
func bindBeer(c *gin.Context, beers mapper.BeerMapper) (beer *domain.Beer, ok bool) {
	var req dto.BeerDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return nil, false
	}

	beer, err := beers.ToDomain(&req)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return nil, false
	}
	return beer, true
}

func parseBeerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("beerId"))
	if err != nil {
		response.BadRequest(c, "invalid beer id", middleware.GetRequestID(c))
		return uuid.Nil, false
	}
	return id, true
}
