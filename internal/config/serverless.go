package config

import (
	"os"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsServerless bool
	FunctionName string
	Region       string
	Provider     string
}

// GetServerlessConfig reads the variables set by the function runtime
func GetServerlessConfig() *ServerlessConfig {
	cfg := &ServerlessConfig{
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       os.Getenv("AWS_REGION"),
	}

	switch {
	case os.Getenv("NETLIFY") == "true":
		cfg.Provider = "netlify"
	case cfg.FunctionName != "":
		cfg.Provider = "aws"
	}
	cfg.IsServerless = cfg.FunctionName != "" || cfg.Provider != ""

	return cfg
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if GetServerlessConfig().IsServerless {
		return "serverless"
	}
	return "server"
}
