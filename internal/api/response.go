package api

import "github.com/gin-gonic/gin"

// Every endpoint answers with one of two envelopes:
//
//	success: {"status": 200, "data": ..., "message": "..."}
//	failure: {"status": 404, "error": "..."}
//
// Clients never see a raw error or stack trace; handlers log the underlying
// error and put only a stable, human-readable message in the envelope.

type successEnvelope struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, successEnvelope{
		Status:  status,
		Data:    data,
		Message: message,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorEnvelope{
		Status: status,
		Error:  message,
	})
}
