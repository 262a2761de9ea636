package handler

import (
	"github.com/Praveenramisetti76/ShareSphere/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	itemHandler    *ItemHandler
	requestHandler *RequestHandler
	messageHandler *MessageHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	itemUseCase *usecase.ItemUseCase,
	requestUseCase *usecase.RequestUseCase,
	messageUseCase *usecase.MessageUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	itemHandler = NewItemHandler(itemUseCase)
	requestHandler = NewRequestHandler(requestUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetRequestHandler() *RequestHandler {
	return requestHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}
