package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/rogelioGuerrero/apisupabase/internal/models"
	"github.com/rogelioGuerrero/apisupabase/internal/store"
	"github.com/rogelioGuerrero/apisupabase/internal/validation"
	"github.com/rogelioGuerrero/apisupabase/pkg/lambda"
)

// ProductoHandler serves CRUD requests over the productos collection.
// It holds no state of its own and makes at most one store call per request.
type ProductoHandler struct {
	store  store.ProductoStore
	logger *logrus.Logger
}

// NewProductoHandler creates a new producto handler
func NewProductoHandler(st store.ProductoStore, logger *logrus.Logger) *ProductoHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &ProductoHandler{
		store:  st,
		logger: logger,
	}
}

// Handle dispatches req on its method
func (h *ProductoHandler) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	switch req.Method {
	case http.MethodGet:
		return h.list(ctx, req)
	case http.MethodPost:
		return h.create(ctx, req)
	case http.MethodPut:
		return h.update(ctx, req)
	case http.MethodDelete:
		return h.delete(ctx, req)
	case http.MethodOptions:
		return preflight()
	default:
		return h.fail(req, methodError(req.Method))
	}
}

// @Summary List productos
// @Tags productos
// @Produce json
// @Success 200 {array} models.Producto
// @Failure 500 {object} ErrorResponse
// @Router /productos [get]
func (h *ProductoHandler) list(ctx context.Context, req *lambda.Request) *lambda.Response {
	productos, err := h.store.SelectAll(ctx)
	if err != nil {
		return h.fail(req, storeError(OpList, err))
	}
	return jsonResponse(http.StatusOK, rows(productos))
}

// @Summary Create a producto
// @Tags productos
// @Accept json
// @Produce json
// @Param producto body models.ProductoInput true "Producto data"
// @Success 201 {array} models.Producto
// @Failure 400 {object} ErrorResponse
// @Router /productos [post]
func (h *ProductoHandler) create(ctx context.Context, req *lambda.Request) *lambda.Response {
	raw, err := validation.DecodeObject(req.Body)
	if err != nil {
		return h.fail(req, parseError(OpCreate, err))
	}

	input, err := models.DecodeProductoInput(raw)
	if err != nil {
		return h.fail(req, validationError(OpCreate, err))
	}

	productos, err := h.store.Insert(ctx, input)
	if err != nil {
		return h.fail(req, storeError(OpCreate, err))
	}
	return jsonResponse(http.StatusCreated, rows(productos))
}

// @Summary Update a producto
// @Tags productos
// @Accept json
// @Produce json
// @Param producto body models.ProductoPatch true "id plus the fields to change"
// @Success 200 {array} models.Producto
// @Failure 400 {object} ErrorResponse
// @Router /productos [put]
func (h *ProductoHandler) update(ctx context.Context, req *lambda.Request) *lambda.Response {
	raw, err := validation.DecodeObject(req.Body)
	if err != nil {
		return h.fail(req, parseError(OpUpdate, err))
	}

	id, ok := models.ParseID(raw["id"])
	if !ok {
		return h.fail(req, missingIDError(OpUpdate))
	}
	delete(raw, "id")

	patch, err := models.DecodeProductoPatch(raw)
	if err != nil {
		return h.fail(req, validationError(OpUpdate, err))
	}

	productos, err := h.store.Update(ctx, id, patch)
	if err != nil {
		return h.fail(req, storeError(OpUpdate, err))
	}
	return jsonResponse(http.StatusOK, rows(productos))
}

// @Summary Delete a producto
// @Tags productos
// @Produce json
// @Param id query string true "Producto ID"
// @Success 200 {array} models.Producto
// @Failure 400 {object} ErrorResponse
// @Router /productos [delete]
func (h *ProductoHandler) delete(ctx context.Context, req *lambda.Request) *lambda.Response {
	id := strings.TrimSpace(req.Query("id"))
	if id == "" {
		return h.fail(req, missingIDError(OpDelete))
	}

	productos, err := h.store.Delete(ctx, models.ID(id))
	if err != nil {
		return h.fail(req, storeError(OpDelete, err))
	}
	return jsonResponse(http.StatusOK, rows(productos))
}

// fail logs the failure and renders its envelope
func (h *ProductoHandler) fail(req *lambda.Request, herr *Error) *lambda.Response {
	entry := h.logger.WithFields(logrus.Fields{
		"kind": herr.Kind.String(),
		"op":   string(herr.Op),
	})
	if req.RequestID != "" {
		entry = entry.WithField("request_id", req.RequestID)
	}

	if herr.Kind == KindStore {
		var storeErr *store.Error
		if errors.As(herr.Err, &storeErr) {
			entry = entry.WithFields(logrus.Fields{
				"store_op": storeErr.Op,
				"table":    storeErr.Table,
				"code":     storeErr.Code,
			})
		}
		entry.WithError(herr.Err).Error("Producto store call failed")
	} else {
		entry.WithError(herr).Debug("Producto request rejected")
	}

	return jsonResponse(herr.StatusCode(), herr.Body())
}

// rows keeps an empty result an empty JSON array
func rows(productos []models.Producto) []models.Producto {
	if productos == nil {
		return []models.Producto{}
	}
	return productos
}

func preflight() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusNoContent,
		Headers:    lambda.JSONHeaders(),
	}
}

func jsonResponse(status int, v any) *lambda.Response {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"message":"Error interno del servidor"}`)
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    lambda.JSONHeaders(),
		Body:       body,
	}
}
