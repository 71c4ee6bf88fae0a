package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "invoicer/docs" // generated by swag init
	"invoicer/internal/adapter/http/handlers"
	"invoicer/internal/adapter/persistence/blob"
	"invoicer/internal/adapter/persistence/repository"
	"invoicer/internal/infrastructure/config"
	"invoicer/internal/infrastructure/database"
	"invoicer/internal/infrastructure/document"
	"invoicer/internal/infrastructure/payments"
	"invoicer/internal/usecase"
	"invoicer/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), router, cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, r *gin.Engine, cfg *config.Config) error {
	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return err
	}

	invoiceRepo := repository.NewInvoiceBlobRepository(blobs, cfg.InvoicesStorageKey, time.Now)
	paymentRepo := repository.NewInvoicePaymentBlobRepository(blobs, cfg.PaymentsStorageKey)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, document.NewPDFRenderer(), cfg.StrictValidation)
	paymentUseCase := usecase.NewInvoicePaymentUseCase(paymentRepo, invoiceRepo, paymentGateway)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	paymentHandler := handlers.NewInvoicePaymentHandler(paymentUseCase)

	// public routes
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addInvoiceRoutes(v1, invoiceHandler, paymentHandler)
	return nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (interfaces.IBlobStore, error) {
	log.Printf("[routes] storage backend=%s invoices_key=%s payments_key=%s", cfg.StorageBackend, cfg.InvoicesStorageKey, cfg.PaymentsStorageKey)

	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		return blob.NewMemoryBlobStore(), nil
	case config.StorageBackendDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return blob.NewDynamoBlobStore(ddb, cfg.BlobTable), nil
	case config.StorageBackendPostgres:
		db, err := database.ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		return blob.NewGormBlobStore(db)
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
