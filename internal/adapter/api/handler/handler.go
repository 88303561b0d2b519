package handler

import (
	"voltmarket/internal/infrastructure/storage"
	"voltmarket/internal/infrastructure/websocket"
	"voltmarket/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	documentHandler     *DocumentHandler
	adminHandler        *AdminHandler
	settingHandler      *SettingHandler
	notificationHandler *NotificationHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	approvalUseCase *usecase.ApprovalUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	storageClient *storage.CloudStorageClient,
	notifier *websocket.Notifier,
	session usecase.SessionClient,
) {
	authHandler = NewAuthHandler(authUseCase, userUseCase)
	userHandler = NewUserHandler(userUseCase)
	documentHandler = NewDocumentHandler(userUseCase, storageClient)
	adminHandler = NewAdminHandler(approvalUseCase)
	settingHandler = NewSettingHandler(settingsUseCase)
	notificationHandler = NewNotificationHandler(notifier, session)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetDocumentHandler() *DocumentHandler {
	return documentHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetSettingHandler() *SettingHandler {
	return settingHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}
