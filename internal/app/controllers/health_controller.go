package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examdesk/internal/app/models/dto"
)

// Health reports that the API is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router / [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
