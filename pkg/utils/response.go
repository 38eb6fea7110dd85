package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Códigos de error devueltos al cliente HTTP.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeUnknownOrigin     = "unknown_origin"
	CodeUnknownRoutingKey = "unknown_routing_key"
	CodeInvalidPayload    = "invalid_payload"
	CodeBrokerUnavailable = "broker_unavailable"
)

// ErrorResponse es el cuerpo de cualquier respuesta de error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendSuccess envuelve el payload en {"data": ...}.
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{"data": data})
}

// SendError envuelve el error en {"error": {...}}.
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{"error": ErrorResponse{Code: code, Message: message}})
}

func SendBadRequest(c *gin.Context, code, message string) {
	SendError(c, http.StatusBadRequest, code, message)
}

// SendBadGateway se usa cuando falla el broker aguas abajo.
func SendBadGateway(c *gin.Context, message string) {
	SendError(c, http.StatusBadGateway, CodeBrokerUnavailable, message)
}
