package api

import "github.com/RoyceAzure/lab/shopcenter/internal/api/handler"

type Server struct {
	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	ChatHandler    *handler.ChatHandler
	ContactHandler *handler.ContactHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	chatHandler *handler.ChatHandler,
	contactHandler *handler.ContactHandler,
) *Server {
	return &Server{
		AuthHandler:    authHandler,
		ProductHandler: productHandler,
		OrderHandler:   orderHandler,
		ChatHandler:    chatHandler,
		ContactHandler: contactHandler,
	}
}
