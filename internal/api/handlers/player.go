package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"players-api/internal/cache"
	apperrors "players-api/internal/errors"
	"players-api/internal/metrics"
	"players-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayersCacheKey is the cache key of the full collection
const PlayersCacheKey = "players"

// PlayerHandler handles HTTP requests for players. Collection reads go
// through the response cache; every successful write clears it.
type PlayerHandler struct {
	service service.PlayerServiceInterface
	cache   *cache.Cache[[]service.PlayerResponse]
	metrics metrics.Metrics
	ttl     time.Duration
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface, responses *cache.Cache[[]service.PlayerResponse], m metrics.Metrics, ttl time.Duration) *PlayerHandler {
	return &PlayerHandler{
		service: playerService,
		cache:   responses,
		metrics: m,
		ttl:     ttl,
	}
}

// CreatePlayer handles POST /players/
// @Summary Create a new player
// @Description Create a player; the id is generated server-side
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.PlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 409 {object} ErrorResponse "Squad number already taken"
// @Failure 422 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/ [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body"})
		return
	}

	player, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusCreated, player)
}

// ListPlayers handles GET /players/
// @Summary List all players
// @Description Return every player. X-Cache reports whether the response came from the cache.
// @Tags players
// @Produce json
// @Success 200 {array} service.PlayerResponse "Successfully retrieved players"
// @Header 200 {string} X-Cache "HIT or MISS"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/ [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	if players, ok := h.cache.Get(PlayersCacheKey); ok {
		h.metrics.IncCacheHit()
		c.Header(cache.Header, string(cache.Hit))
		c.JSON(http.StatusOK, players)
		return
	}

	players, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.cache.Set(PlayersCacheKey, players, h.ttl)
	h.metrics.IncCacheMiss()
	c.Header(cache.Header, string(cache.Miss))
	c.JSON(http.StatusOK, players)
}

// GetPlayer handles GET /players/:id
// @Summary Get player by ID
// @Tags players
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 400 {object} ErrorResponse "Invalid player ID"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parsePlayerID(c)
	if !ok {
		return
	}

	player, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetPlayerBySquadNumber handles GET /players/squadnumber/:squad_number
// @Summary Get player by squad number
// @Tags players
// @Produce json
// @Param squad_number path int true "Squad number"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 400 {object} ErrorResponse "Invalid squad number"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/squadnumber/{squad_number} [get]
func (h *PlayerHandler) GetPlayerBySquadNumber(c *gin.Context) {
	squadNumber, err := strconv.Atoi(c.Param("squad_number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidSquadNumber.Error()})
		return
	}

	player, err := h.service.GetBySquadNumber(c.Request.Context(), squadNumber)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePlayer handles PUT /players/:id
// @Summary Replace a player
// @Description Overwrite every field except id and squad number
// @Tags players
// @Accept json
// @Param id path string true "Player ID (UUID)"
// @Param player body service.PlayerRequest true "Player data"
// @Success 204 "Player updated"
// @Failure 400 {object} ErrorResponse "Invalid player ID"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 422 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, ok := parsePlayerID(c)
	if !ok {
		return
	}

	var req service.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.writeError(c, err)
		return
	}

	h.invalidate()
	c.Status(http.StatusNoContent)
}

// DeletePlayer handles DELETE /players/:id
// @Summary Delete a player
// @Tags players
// @Param id path string true "Player ID (UUID)"
// @Success 204 "Player deleted"
// @Failure 400 {object} ErrorResponse "Invalid player ID"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parsePlayerID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	h.invalidate()
	c.Status(http.StatusNoContent)
}

func (h *PlayerHandler) invalidate() {
	h.cache.ClearAll()
	h.metrics.IncCacheInvalidation()
}

// writeError maps service outcomes to status codes
func (h *PlayerHandler) writeError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPlayerNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPlayerExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidPlayerID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsPersistence(err):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func parsePlayerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid player ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}
