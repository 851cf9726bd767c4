package handlers

import (
	"errors"
	"log"
	"net/http"

	"royalestats/internal/application/usecase"
	"royalestats/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	players *usecase.PlayerUseCase
}

func NewUserHandler(players *usecase.PlayerUseCase) *UserHandler {
	return &UserHandler{players: players}
}

type linkTagReq struct {
	PlayerTag string `json:"playerTag" binding:"required"`
}

// GET /api/user/data
func (h *UserHandler) GetUserData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.players.GetUserData(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/user/player-stats/:playerTag
func (h *UserHandler) GetPlayerStats(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	stats, err := h.players.GetPlayerStats(c, c.Param("playerTag"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// POST /api/user/player-tag
func (h *UserHandler) LinkPlayerTag(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req linkTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerTag is required"})
		return
	}

	user, err := h.players.LinkPlayerTag(c, userID, req.PlayerTag)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("userId"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps the domain error taxonomy onto HTTP statuses. Raw
// upstream errors and the API key never reach the response body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrUserNotFound.Error()})
	case errors.Is(err, domain.ErrPlayerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrPlayerNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidTag):
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidTag.Error()})
	case errors.Is(err, domain.ErrTagTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrTagTaken.Error()})
	case errors.Is(err, domain.ErrAPIKeyMissing):
		log.Printf("Config error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrAPIKeyMissing.Error()})
	case errors.Is(err, domain.ErrUpstreamAuth):
		log.Printf("Upstream auth error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "clash royale api key is invalid"})
	default:
		log.Printf("Error fetching player data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching player data from clash royale api"})
	}
}
