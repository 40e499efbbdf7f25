package lambda

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	RequestID   string            `json:"request_id"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler. It never fails: every
// outcome, including errors, is a response.
type HandlerFunc func(ctx context.Context, req *Request) *Response

// Query returns the query parameter key, or "" if absent
func (r *Request) Query(key string) string {
	return r.QueryParams[key]
}

// Header returns the header key, matched case-insensitively
func (r *Request) Header(key string) string {
	if v, ok := r.Headers[key]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// FromAPIGateway converts an API Gateway proxy event, the event shape
// Netlify and AWS Lambda deliver to Go functions, into a Request
func FromAPIGateway(event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded && event.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 body: %w", err)
		}
		body = decoded
	}

	query := make(map[string]string, len(event.QueryStringParameters))
	for k, v := range event.QueryStringParameters {
		query[k] = v
	}
	// Multi-value parameters fill in keys the single-value map lacks
	for k, values := range event.MultiValueQueryStringParameters {
		if _, ok := query[k]; !ok && len(values) > 0 {
			query[k] = values[0]
		}
	}

	headers := make(map[string]string, len(event.Headers))
	for k, v := range event.Headers {
		headers[k] = v
	}

	return &Request{
		Method:      strings.ToUpper(event.HTTPMethod),
		Path:        event.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		RequestID:   event.RequestContext.RequestID,
	}, nil
}

// ToAPIGateway converts a Response into an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// JSONHeaders returns the headers every JSON response carries
func JSONHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json; charset=utf-8",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}, ", "),
		"Access-Control-Allow-Headers": "Content-Type, Authorization, X-Request-ID",
	}
}
