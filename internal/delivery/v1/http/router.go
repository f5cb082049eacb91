package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/green-haven/nursery-backend/docs" // Импорт сгенерированных файлов
	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router            *chi.Mux
	uploadImagesLimit int
	logger            logger.Logger
}

func NewRouter(router *chi.Mux, uploadImagesLimit int, logger logger.Logger) *Router {
	return &Router{router: router, uploadImagesLimit: uploadImagesLimit, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, catUC usecase.CategoryUC, ordUC usecase.OrderUC, payUC usecase.PaymentUC, imgUC usecase.ImageUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(prUC, r.logger))
		registerCategoryRoutes(v1, NewCategoryHandler(catUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(ordUC, r.logger))
		registerPaymentRoutes(v1, NewPaymentHandler(payUC, r.logger))
		registerImageRoutes(v1, NewImageHandler(imgUC, r.uploadImagesLimit, r.logger))
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.createProduct)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Put("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", catHandler.listCategories)
		cat.Post("/", catHandler.createCategory)
		cat.Put("/{id}", catHandler.updateCategory)
		cat.Delete("/{id}", catHandler.deleteCategory)
	})
}

func registerOrderRoutes(router chi.Router, ordHandler *OrderHandler) {
	router.Route("/orders", func(ord chi.Router) {
		ord.Get("/", ordHandler.listOrders)
		ord.Post("/", ordHandler.createOrder)
		ord.Get("/{id}", ordHandler.getOrder)
		ord.Patch("/{id}/status", ordHandler.updateOrderStatus)
	})
}

func registerPaymentRoutes(router chi.Router, payHandler *PaymentHandler) {
	router.Route("/payments", func(pay chi.Router) {
		pay.Post("/confirm", payHandler.confirmPayment)
	})
}

func registerImageRoutes(router chi.Router, imgHandler *ImageHandler) {
	router.Route("/images", func(img chi.Router) {
		img.Post("/upload", imgHandler.uploadImage)
		img.Post("/bulk", imgHandler.uploadImagesBulk)
		img.Delete("/{key}", imgHandler.deleteImage)
	})
}
