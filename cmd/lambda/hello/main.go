package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/rogelioGuerrero/apisupabase/internal/config"
	"github.com/rogelioGuerrero/apisupabase/internal/handlers"
	"github.com/rogelioGuerrero/apisupabase/internal/logging"
	"github.com/rogelioGuerrero/apisupabase/pkg/lambda"
)

func main() {
	// hello needs no store, so the configuration is not validated
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger := logging.New(cfg.LogLevel, true)

	awslambda.Start(lambda.NewAPIGatewayHandler("hello", handlers.NewHelloHandler().Handle, logger))
}
