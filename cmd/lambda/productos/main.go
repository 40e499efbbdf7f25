package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/rogelioGuerrero/apisupabase/internal/config"
	"github.com/rogelioGuerrero/apisupabase/pkg/lambda"
	"github.com/rogelioGuerrero/apisupabase/pkg/server"
)

var handler lambda.APIGatewayHandler

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}

	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	handler = lambda.NewAPIGatewayHandler("productos", container.ProductoHandler().Handle, container.Logger)
}

func main() {
	awslambda.Start(handler)
}
