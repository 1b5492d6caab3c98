package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks two envelopes and nothing else: successes are
// {success, data, ...} and failures are {error, details?}. Every handler in
// the app goes through these helpers so the client never sees a third shape.

// OK sends a 200 response with a single data payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// OKMsg sends a 200 response with a payload and a human-readable message.
func OKMsg(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "message": message})
}

// List sends a 200 response for unpaginated collections, with the item count.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "count": count})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data, "message": message})
}

// BadRequest sends a 400 error response with a field-level message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": message})
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

// InternalError sends a 500 error response. The concrete error goes into
// details; callers log it before reaching here.
func InternalError(c *gin.Context, err error) {
	body := gin.H{"error": "Internal server error"}
	if err != nil {
		body["details"] = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// UnprocessableEntity sends a 422 error response.
func UnprocessableEntity(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": message})
}
