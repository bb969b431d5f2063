package api

import (
	"net/http"

	reqdto "roomhub/internal/handler/dto/request"
	resdto "roomhub/internal/handler/dto/response"
	"roomhub/internal/handler/httperr"
	"roomhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PresenceHandler struct {
	presence usecase.PresenceUseCase
}

func NewPresenceHandler(presence usecase.PresenceUseCase) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// @Summary Presence ping
// @Description Client heartbeat on a fixed polling cadence; returns the sliding-window online count and the durable visit total
// @Tags presence
// @Accept json
// @Produce json
// @Param request body reqdto.PresencePingRequest true "Session id"
// @Success 200 {object} resdto.PresencePingResponse
// @Router /api/presence/ping [post]
func (h *PresenceHandler) Ping(c *gin.Context) {
	var req reqdto.PresencePingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	sessionID := req.SessionID
	issued := ""
	if sessionID == "" {
		// First contact before the client has a session id: issue one.
		sessionID = uuid.NewString()
		issued = sessionID
	}

	online, total, err := h.presence.Ping(sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if issued != "" {
		c.JSON(http.StatusOK, gin.H{"online": online, "total": total, "sessionId": issued})
		return
	}
	c.JSON(http.StatusOK, resdto.PresencePingResponse{Online: online, Total: total})
}

// @Summary Presence disconnect
// @Description Removes the session from the online set immediately
// @Tags presence
// @Accept json
// @Produce json
// @Param request body reqdto.PresenceDisconnectRequest true "Session id"
// @Success 200 {object} map[string]bool
// @Router /api/presence/disconnect [post]
func (h *PresenceHandler) Disconnect(c *gin.Context) {
	var req reqdto.PresenceDisconnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.SessionID != "" {
		h.presence.Disconnect(req.SessionID)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
