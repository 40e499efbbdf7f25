package handlers

import (
	"context"
	"net/http"

	"github.com/rogelioGuerrero/apisupabase/pkg/lambda"
)

// HelloResponse is the health check body
type HelloResponse struct {
	Message string `json:"message"`
	Method  string `json:"method"`
}

// HelloHandler answers every request with a fixed greeting
type HelloHandler struct{}

// NewHelloHandler creates a new hello handler
func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HelloResponse
// @Router /hello [get]
func (h *HelloHandler) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	return jsonResponse(http.StatusOK, HelloResponse{
		Message: "Hello from Netlify Functions!",
		Method:  req.Method,
	})
}
