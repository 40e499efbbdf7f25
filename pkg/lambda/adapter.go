package lambda

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// APIGatewayHandler is the signature lambda.Start expects for proxy events
type APIGatewayHandler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewAPIGatewayHandler adapts h to proxy events and logs one line per
// invocation. It never returns an error so the runtime always relays the
// response built by h.
func NewAPIGatewayHandler(function string, h HandlerFunc, logger *logrus.Logger) APIGatewayHandler {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := FromAPIGateway(event)
		if err != nil {
			logger.WithError(err).WithField("function", function).Warn("Invalid event")
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Headers:    JSONHeaders(),
				Body:       `{"message":"Cuerpo de la petición inválido"}`,
			}, nil
		}

		return Serve(ctx, function, h, req, logger).ToAPIGateway(), nil
	}
}

// Serve runs h on req with a request id assigned and logs the outcome
func Serve(ctx context.Context, function string, h HandlerFunc, req *Request, logger *logrus.Logger) *Response {
	start := time.Now()

	if req.RequestID == "" {
		req.RequestID = req.Header("X-Request-ID")
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	resp := h(ctx, req)
	if resp.Headers == nil {
		resp.Headers = map[string]string{}
	}
	resp.Headers["X-Request-ID"] = req.RequestID

	fields := logrus.Fields{
		"request_id":  req.RequestID,
		"function":    function,
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
		"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1000000,
	}

	switch {
	case resp.StatusCode >= 500:
		logger.WithFields(fields).Error("Server error")
	case resp.StatusCode >= 400:
		logger.WithFields(fields).Warn("Client error")
	default:
		logger.WithFields(fields).Info("Request completed")
	}

	return resp
}
