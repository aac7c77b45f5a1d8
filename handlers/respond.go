package handlers

import (
	"net/http"
	"strconv"

	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

// statusForError is the single place service error kinds turn into HTTP
// statuses.
func statusForError(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet("user_id").(uint)
}

func currentUserName(c *gin.Context) string {
	return c.MustGet("user_name").(string)
}

// paramID parses a numeric path parameter, writing a 400 on failure.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
