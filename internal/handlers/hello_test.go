package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/rogelioGuerrero/apisupabase/pkg/lambda"
)

func TestHelloHandler_Handle(t *testing.T) {
	h := NewHelloHandler()

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			resp := h.Handle(context.Background(), &lambda.Request{Method: method})

			if resp.StatusCode != http.StatusOK {
				t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
			}
			want := `{"message":"Hello from Netlify Functions!","method":"` + method + `"}`
			if string(resp.Body) != want {
				t.Errorf("Body = %s, want %s", resp.Body, want)
			}
		})
	}
}
