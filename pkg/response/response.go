package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK writes a 200 with the payload as the response body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload as the response body
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest writes a 400 with an explanatory message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// NotFound writes a 404 with an explanatory message
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// InternalError writes a 500 carrying the raw error message
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
