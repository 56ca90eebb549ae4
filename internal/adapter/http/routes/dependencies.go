package routes

import (
	"context"
	"fmt"
	"strings"

	"shootbook/internal/adapter/http/handlers"
	"shootbook/internal/adapter/persistence/repository"
	"shootbook/internal/adapter/persistence/session"
	"shootbook/internal/infrastructure/awscfg"
	"shootbook/internal/infrastructure/bookings"
	"shootbook/internal/infrastructure/cache"
	"shootbook/internal/infrastructure/config"
	"shootbook/internal/infrastructure/database"
	"shootbook/internal/infrastructure/health"
	"shootbook/internal/infrastructure/payments"
	"shootbook/internal/infrastructure/pricing"
	"shootbook/internal/infrastructure/storage"
	"shootbook/internal/usecase"
	"shootbook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const sessionStoreMemory = "memory"

// buildHandlers connects every collaborator and assembles the handlers.
// The returned func releases the connections.
func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (Handlers, *health.Monitor, func(), error) {
	awsCfg, err := awscfg.Load(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, nil, fmt.Errorf("load aws config: %w", err)
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.DynamoDBEndpoint)
	submissionRepo := repository.NewSubmissionDynamoRepository(ddb, cfg.SubmissionsTable)
	paymentRepo := repository.NewCreatorPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	checks := map[string]health.Check{
		"dynamodb": func(ctx context.Context) error {
			_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(cfg.SubmissionsTable)})
			return err
		},
	}
	closeFn := func() {}

	var store interfaces.ISessionStore
	if strings.EqualFold(cfg.SessionStore, sessionStoreMemory) {
		logger.Warn("using in-memory wizard sessions, not shared between instances")
		store = session.NewMemoryStore(cfg.SessionTTL)
	} else {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
		if err != nil {
			return Handlers{}, nil, nil, err
		}
		store = session.NewRedisStore(rdb, cfg.SessionTTL, logger)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		closeFn = func() { _ = rdb.Close() }
	}

	pricingClient := pricing.NewClient(cfg.PricingAPIURL, cfg.PricingAPIKey, cfg.UpstreamTimeout, logger)
	bookingClient := bookings.NewClient(cfg.BookingAPIURL, cfg.BookingAPIKey, cfg.UpstreamTimeout, logger)
	presigner := storage.NewS3Presigner(awsCfg, cfg.S3Endpoint, cfg.VideoBucket)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	wizardUseCase := usecase.NewWizardUseCase(store, pricingClient, bookingClient, submissionRepo, usecase.WizardOptions{
		ResultsPath:   cfg.ResultsPath,
		RedirectDelay: cfg.SearchRedirectDelay,
	}, logger)
	quoteUseCase := usecase.NewQuoteUseCase(pricingClient)
	videoUseCase := usecase.NewVideoUseCase(presigner, cfg.VideoURLTTL)
	paymentUseCase := usecase.NewCreatorPaymentUseCase(paymentRepo, submissionRepo, paymentGateway, usecase.PaymentOptions{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayer,
		TestPayerUserID: cfg.MercadoPagoTestPayerUID,
	}, logger)

	monitor := health.NewMonitor(checks, logger)

	return Handlers{
		Wizard:  handlers.NewWizardHandler(wizardUseCase),
		Quote:   handlers.NewQuoteHandler(quoteUseCase),
		Payment: handlers.NewCreatorPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
		Video:   handlers.NewVideoHandler(videoUseCase),
		Health:  handlers.NewHealthHandler(monitor),
	}, monitor, closeFn, nil
}
