//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/bootstrap"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	ctx := context.Background()

	cfg, err := bootstrap.LoadConfig(ctx)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.InitLogger(cfg.Stage)

	// Connections live for the lifetime of the execution environment.
	svcs, err := bootstrap.NewServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	ginLambda = ginadapter.New(server.New(cfg, svcs.Names, svcs.Stats).Router())
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
