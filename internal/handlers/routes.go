package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rogelioGuerrero/apisupabase/docs"
	"github.com/rogelioGuerrero/apisupabase/pkg/lambda"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Productos *ProductoHandler
	Hello     *HelloHandler
	Logger    *logrus.Logger
}

// SetupRoutes mounts the functions on router under both the local API
// paths and the paths Netlify serves them from
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	productos := GinHandler("productos", config.Productos.Handle, config.Logger)
	hello := GinHandler("hello", config.Hello.Handle, config.Logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.Any("/productos", productos)
		api.GET("/hello", hello)
	}

	router.GET("/hello", hello)

	functions := router.Group("/.netlify/functions")
	{
		functions.Any("/productos", productos)
		functions.Any("/hello", hello)
	}
}

// GinHandler runs a serverless handler inside gin, so the local server
// answers exactly as the deployed function does
func GinHandler(function string, h lambda.HandlerFunc, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Cuerpo de la petición inválido", Error: err.Error()})
			return
		}

		req := &lambda.Request{
			Method:      strings.ToUpper(c.Request.Method),
			Path:        c.Request.URL.Path,
			Headers:     make(map[string]string, len(c.Request.Header)),
			QueryParams: make(map[string]string),
			Body:        body,
			RequestID:   c.GetHeader("X-Request-ID"),
		}
		for k := range c.Request.Header {
			req.Headers[k] = c.Request.Header.Get(k)
		}
		for k, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				req.QueryParams[k] = values[0]
			}
		}

		resp := lambda.Serve(c.Request.Context(), function, h, req, logger)
		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Status(resp.StatusCode)
		if len(resp.Body) > 0 {
			_, _ = c.Writer.Write(resp.Body)
		}
	}
}
