package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fashioncollab/fashioncollab/internal/apperr"
)

// writeError is the single place service errors become status codes.
// Upstream detail goes to the server log only; the response carries just
// the category message.
func writeError(ctx *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.KindNotFound:
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.KindConflict:
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
