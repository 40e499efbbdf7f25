package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/rogelioGuerrero/apisupabase/internal/models"
)

// PostgRESTStore talks to the Supabase REST interface of a table
type PostgRESTStore struct {
	endpoint string
	key      string
	table    string
	client   *http.Client
	logger   *logrus.Logger
}

// postgrestError is the error body PostgREST sends with non-2xx responses
type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// NewPostgRESTStore creates a client for {baseURL}/rest/v1/{table}.
// A nil httpClient gets a default client with the given timeout.
func NewPostgRESTStore(baseURL, key, table string, timeout time.Duration, httpClient *http.Client, logger *logrus.Logger) (*PostgRESTStore, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid supabase url %q: scheme must be http or https", baseURL)
	}
	if table == "" {
		table = models.Table
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = logrus.New()
	}

	if role, ok := KeyRole(key); ok {
		entry := logger.WithFields(logrus.Fields{"table": table, "role": role})
		if role == RoleServiceRole {
			entry.Warn("Supabase key bypasses row level security")
		} else {
			entry.Debug("Supabase key role")
		}
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/rest/v1/" + url.PathEscape(table)
	u.RawQuery = ""

	return &PostgRESTStore{
		endpoint: u.String(),
		key:      key,
		table:    table,
		client:   httpClient,
		logger:   logger,
	}, nil
}

// SelectAll issues GET ?select=*
func (s *PostgRESTStore) SelectAll(ctx context.Context) ([]models.Producto, error) {
	q := url.Values{}
	q.Set("select", "*")
	return s.do(ctx, OpSelect, http.MethodGet, q, nil)
}

// Insert issues POST with the row as body
func (s *PostgRESTStore) Insert(ctx context.Context, input models.ProductoInput) ([]models.Producto, error) {
	return s.do(ctx, OpInsert, http.MethodPost, nil, input)
}

// Update issues PATCH ?id=eq.<id>
func (s *PostgRESTStore) Update(ctx context.Context, id models.ID, patch models.ProductoPatch) ([]models.Producto, error) {
	return s.do(ctx, OpUpdate, http.MethodPatch, idFilter(id), patch)
}

// Delete issues DELETE ?id=eq.<id>
func (s *PostgRESTStore) Delete(ctx context.Context, id models.ID) ([]models.Producto, error) {
	return s.do(ctx, OpDelete, http.MethodDelete, idFilter(id), nil)
}

// Close releases idle connections
func (s *PostgRESTStore) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func idFilter(id models.ID) url.Values {
	q := url.Values{}
	q.Set("id", "eq."+id.String())
	return q
}

func (s *PostgRESTStore) do(ctx context.Context, op, method string, query url.Values, body any) ([]models.Producto, error) {
	target := s.endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, NewError(op, s.table, "", fmt.Errorf("failed to encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, NewError(op, s.table, "", err)
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, NewError(op, s.table, "", fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewError(op, s.table, strconv.Itoa(resp.StatusCode), fmt.Errorf("failed to read response: %w", err))
	}

	s.logger.WithFields(logrus.Fields{
		"op":          op,
		"table":       s.table,
		"status_code": resp.StatusCode,
		"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1000000,
	}).Debug("PostgREST call")

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeError(op, s.table, resp.StatusCode, raw)
	}

	productos := []models.Producto{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return productos, nil
	}
	if err := json.Unmarshal(raw, &productos); err != nil {
		return nil, NewError(op, s.table, strconv.Itoa(resp.StatusCode), fmt.Errorf("failed to decode response: %w", err))
	}
	return productos, nil
}

func decodeError(op, table string, status int, raw []byte) error {
	var pe postgrestError
	if err := json.Unmarshal(raw, &pe); err != nil || pe.Message == "" {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(status)
		}
		return NewError(op, table, strconv.Itoa(status), errors.New(msg))
	}

	code := pe.Code
	if code == "" {
		code = strconv.Itoa(status)
	}
	return NewError(op, table, code, errors.New(pe.Message))
}
