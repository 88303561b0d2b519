package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"voltmarket/internal/adapter/api"
	"voltmarket/internal/adapter/api/handler"
	apimiddleware "voltmarket/internal/adapter/api/middleware"
	"voltmarket/internal/adapter/api/router"
	"voltmarket/internal/adapter/repository"
	"voltmarket/internal/infrastructure/firebase"
	"voltmarket/internal/infrastructure/ratelimit"
	"voltmarket/internal/infrastructure/storage"
	"voltmarket/internal/infrastructure/websocket"
	"voltmarket/internal/usecase"
	"voltmarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			log.Fatalf("Neither FIREBASE_SERVICE_ACCOUNT_JSON nor FIREBASE_SERVICE_ACCOUNT_PATH is set")
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	accountRepo := repository.NewFirestoreAccountRepository(firestoreClient)
	settingRepo := repository.NewFirestoreSettingRepository(firestoreClient)

	sessionClient := firebase.NewAuthClient(authClient, cfg.FirebaseApiKey)

	notifier := websocket.NewNotifier()
	notifier.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	authUseCase := usecase.NewAuthUseCase(accountRepo, sessionClient)
	userUseCase := usecase.NewUserUseCase(accountRepo, sessionClient)
	approvalUseCase := usecase.NewApprovalUseCase(accountRepo, sessionClient, notifier)
	settingsUseCase := usecase.NewSettingsUseCase(settingRepo, time.Duration(cfg.SettingsTTL)*time.Second)

	handler.Setup(authUseCase, userUseCase, approvalUseCase, settingsUseCase, storageClient, notifier, sessionClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(sessionClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware, limiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
