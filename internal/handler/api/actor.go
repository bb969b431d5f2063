package api

import (
	"github.com/gin-gonic/gin"

	"roomhub/internal/handler/middleware"
)

// resolveActor prefers the explicit actor id in the request body and falls
// back to the authenticated token identity when the body omits it.
func resolveActor(c *gin.Context, bodyActor string) string {
	if bodyActor != "" {
		return bodyActor
	}
	if actor, ok := middleware.GetActor(c); ok {
		return actor.ID
	}
	return ""
}
