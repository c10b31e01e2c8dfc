package utils

import "github.com/gin-gonic/gin"

// JSONResponse defines the uniform structure for error bodies written by middleware.
type JSONResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Abort writes a JSON error and stops the handler chain.
func Abort(ctx *gin.Context, status int, code int, message string) {
	ctx.AbortWithStatusJSON(status, JSONResponse{Code: code, Message: message})
}
