package controller

import (
	"strconv"

	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated user id out of the context. The auth
// middleware guarantees it is set on protected routes.
func currentUserID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	return claims.UserID, true
}

// pathID parses a numeric path parameter, responding 400 on garbage.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
