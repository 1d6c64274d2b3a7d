package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/api"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		//Auth相關路由
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", server.AuthHandler.Signup)
			r.Post("/login", server.AuthHandler.Login)
			r.With(m.AuthMiddleware).Get("/me", server.AuthHandler.Me)
		})

		//商品路由, 讀取公開, 寫入僅限admin
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.GetAllProducts)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.With(m.AdminMiddleware).Post("/", server.ProductHandler.CreateProduct)
			r.With(m.AdminMiddleware).Put("/{id}", server.ProductHandler.UpdateProduct)
			r.With(m.AdminMiddleware).Delete("/{id}", server.ProductHandler.DeleteProduct)
		})

		//訂單路由, 需登入
		r.Route("/orders", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/", server.OrderHandler.ListOrders)
		})

		//聊天路由, 需登入
		r.Route("/chat", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Post("/", server.ChatHandler.SendMessage)
			r.Get("/", server.ChatHandler.GetHistory)
		})

		//聯絡表單
		r.Post("/contact", server.ContactHandler.CreateContact)
	})

	return r
}
