package main

import (
	"context"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api"
	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/handler"
	apimiddleware "github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/middleware"
	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/router"
	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/repository"
	"github.com/Praveenramisetti76/ShareSphere/internal/infrastructure/firebase"
	"github.com/Praveenramisetti76/ShareSphere/internal/usecase"
	"github.com/Praveenramisetti76/ShareSphere/pkg/config"
	"github.com/Praveenramisetti76/ShareSphere/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase: %v", err)
		os.Exit(1)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logger.Error("Failed to initialize Firebase Auth: %v", err)
		os.Exit(1)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		logger.Error("Failed to create Firestore client: %v", err)
		os.Exit(1)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	itemRepo := repository.NewFirestoreItemRepository(firestoreClient)
	requestRepo := repository.NewFirestoreRequestRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, itemRepo)
	itemUseCase := usecase.NewItemUseCase(itemRepo, userRepo, time.Duration(cfg.ItemLifetime)*24*time.Hour)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, itemRepo, userRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, userRepo, itemRepo)

	handler.Setup(authUseCase, userUseCase, itemUseCase, requestUseCase, messageUseCase)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware, authClient)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
