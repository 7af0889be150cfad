package routes

import (
	"context"
	"log"
	"strconv"

	_ "albaranes/docs" // This will be auto-generated
	"albaranes/internal/adapter/http/handlers"
	repository2 "albaranes/internal/adapter/persistence/repository"
	"albaranes/internal/infrastructure/blobstore"
	"albaranes/internal/infrastructure/database"
	"albaranes/internal/infrastructure/pdf"
	"albaranes/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	noteRepo := repository2.NewDeliveryNoteDynamoRepository(ddb)
	directory := repository2.NewPartyDynamoDirectory(ddb)

	blobs, err := blobstore.NewS3BlobStore(context.Background())
	if err != nil {
		log.Fatalf("Failed to configure blob store: %v", err)
	}
	renderer := pdf.NewRenderer()

	noteUseCase := usecase.NewDeliveryNoteUseCase(noteRepo, directory)
	signingUseCase := usecase.NewSigningUseCase(noteRepo, directory, blobs, renderer)

	noteHandler := handlers.NewDeliveryNoteHandler(noteUseCase)
	signingHandler := handlers.NewSigningHandler(signingUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDeliveryNoteRoutes(v1, noteHandler, signingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
