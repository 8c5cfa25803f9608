package handler

import (
	"errors"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps business-rule failures onto the response envelope.
// Nothing below the transport ever propagates as an unhandled fault.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		utils.NotFound(c, "Task not found")
	case errors.Is(err, usecase.ErrAlreadyDone):
		utils.Conflict(c, "Task is already done")
	case errors.Is(err, usecase.ErrInvalidStatus):
		utils.BadRequest(c, "Invalid status transition")
	case errors.Is(err, usecase.ErrValidation):
		utils.BadRequest(c, "Invalid task data")
	case errors.Is(err, usecase.ErrInsufficientPoints):
		utils.BadRequest(c, "Insufficient points")
	case errors.Is(err, usecase.ErrInvalidAmount):
		utils.BadRequest(c, "Amount cannot be negative")
	default:
		utils.InternalError(c, err.Error())
	}
}
