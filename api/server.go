package api

import (
	"context"
	"fmt"
	"os"

	"github.com/alex-pricope/elevate-awards/api/controllers"
	"github.com/alex-pricope/elevate-awards/api/transport"
	"github.com/alex-pricope/elevate-awards/awards"
	"github.com/alex-pricope/elevate-awards/logging"
	"github.com/alex-pricope/elevate-awards/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	store, err := s.newVoteStore(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to create vote store: %v", err)
		panic("failed to create vote store")
	}

	//Register controllers
	awardsController := controllers.NewAwardsController(store)
	awardsController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(store, s.config.AdminToken)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// newVoteStore builds the store for the configured backend, loading any persisted state.
func (s *Server) newVoteStore(ctx context.Context) (*awards.VoteStore, error) {
	categories := s.config.Categories

	var persister *storage.Persister
	switch s.config.Backend {
	case "memory":
		state := awards.State{}
		if s.config.SeedVotes {
			logging.Log.Info("Seeding demo votes")
			state = awards.SeedState()
		}
		return awards.NewVoteStore(categories, state), nil
	case "dynamo":
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		dynamoClient := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			if s.config.DynamoEndpoint != "" {
				o.BaseEndpoint = aws.String(s.config.DynamoEndpoint)
			}
		})
		persister = &storage.Persister{
			Votes: &storage.DynamoVoteStorage{
				Client:    dynamoClient,
				TableName: s.config.TableNameVotes,
			},
			Periods: &storage.DynamoVotingPeriodStorage{
				Client:    dynamoClient,
				TableName: s.config.TableNameVotingPeriod,
			},
		}
	case "postgres", "sqlite":
		db, err := storage.OpenSQL(s.config.Backend, s.config.SQLDSN)
		if err != nil {
			return nil, err
		}
		persister = &storage.Persister{
			Votes:   &storage.SQLStorage{DB: db},
			Periods: &storage.SQLPeriodStorage{DB: db},
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", s.config.Backend)
	}

	state, err := persister.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("load votes: %w", err)
	}
	return awards.NewVoteStore(categories, state, awards.WithPersister(persister)), nil
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
