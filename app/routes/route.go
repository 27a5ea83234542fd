package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/hqvu/furnistore/app/configs"
	"github.com/hqvu/furnistore/app/handlers"
	"github.com/hqvu/furnistore/app/handlers/admin"
	"github.com/hqvu/furnistore/app/middlewares"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/hqvu/furnistore/app/services"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	rnd := render.New()
	validate := validator.New()

	tx := repositories.NewTransactor(db)
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	promotionRepo := repositories.NewPromotionRepository(db)
	usageRepo := repositories.NewPromotionUsageRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	locationRepo := repositories.NewLocationRepository(db)

	cartSvc := services.NewCartService(tx, cartRepo, cartItemRepo, productRepo)
	promotionSvc := services.NewPromotionService(promotionRepo)
	checkoutSvc := services.NewCheckoutService(tx, cartRepo, cartItemRepo, orderRepo, promotionSvc, promotionRepo, usageRepo)

	authHandler := handlers.NewAuthHandler(rnd, userRepo, cartSvc, validate, env.JWTSecret, env.IsProduction())
	cartHandler := handlers.NewCartHandler(rnd, cartSvc)
	promotionHandler := handlers.NewPromotionHandler(rnd, promotionSvc)
	orderHandler := handlers.NewOrderHandler(rnd, checkoutSvc, orderRepo, validate)
	productHandler := handlers.NewProductHandler(rnd, productRepo, categoryRepo)
	locationHandler := handlers.NewLocationHandler(rnd, locationRepo)

	categoryAdmin := admin.NewCategoryAdminHandler(rnd, categoryRepo, validate)
	productAdmin := admin.NewProductAdminHandler(rnd, productRepo, validate)
	promotionAdmin := admin.NewPromotionAdminHandler(rnd, promotionRepo, validate)
	orderAdmin := admin.NewOrderAdminHandler(rnd, orderRepo, promotionRepo)

	router := mux.NewRouter()
	router.Use(middlewares.OwnerContextMiddleware(env.JWTSecret))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	api.HandleFunc("/auth/me", authHandler.UpdateProfile).Methods("PUT")

	api.HandleFunc("/carts", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/carts/items", cartHandler.AddToCart).Methods("POST")
	api.HandleFunc("/carts/items", cartHandler.UpdateCartItem).Methods("PUT")
	api.HandleFunc("/carts/items", cartHandler.RemoveCartItem).Methods("DELETE")

	api.HandleFunc("/promotions", promotionHandler.ListActive).Methods("GET")
	api.HandleFunc("/promotions/validate", promotionHandler.Validate).Methods("POST")

	api.HandleFunc("/orders", orderHandler.PlaceOrder).Methods("POST")
	api.HandleFunc("/orders", orderHandler.ListMine).Methods("GET")

	api.HandleFunc("/products/search", productHandler.Search).Methods("GET")
	api.HandleFunc("/products/featured", productHandler.Featured).Methods("GET")
	api.HandleFunc("/products/{slug}", productHandler.GetBySlug).Methods("GET")
	api.HandleFunc("/categories", productHandler.Categories).Methods("GET")
	api.HandleFunc("/locations", locationHandler.List).Methods("GET")

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminMiddleware(rnd))

	csrfMiddleware := csrf.Protect(
		[]byte(env.CSRFKey),
		csrf.Secure(env.IsProduction()),
		csrf.Path("/"),
	)
	adminRouter.Use(csrfMiddleware)

	adminRouter.HandleFunc("/csrf", func(w http.ResponseWriter, r *http.Request) {
		_ = rnd.JSON(w, http.StatusOK, map[string]interface{}{"csrfToken": csrf.Token(r)})
	}).Methods("GET")

	adminRouter.HandleFunc("/categories", categoryAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/categories", categoryAdmin.Create).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}", categoryAdmin.Update).Methods("PUT")
	adminRouter.HandleFunc("/categories/{id}", categoryAdmin.Delete).Methods("DELETE")

	adminRouter.HandleFunc("/products", productAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/products", productAdmin.Create).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", productAdmin.Get).Methods("GET")
	adminRouter.HandleFunc("/products/{id}", productAdmin.Update).Methods("PUT")
	adminRouter.HandleFunc("/products/{id}", productAdmin.Delete).Methods("DELETE")

	adminRouter.HandleFunc("/promotions", promotionAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/promotions", promotionAdmin.Create).Methods("POST")
	adminRouter.HandleFunc("/promotions/{id}", promotionAdmin.Get).Methods("GET")
	adminRouter.HandleFunc("/promotions/{id}", promotionAdmin.Update).Methods("PUT")
	adminRouter.HandleFunc("/promotions/{id}", promotionAdmin.Delete).Methods("DELETE")

	adminRouter.HandleFunc("/orders", orderAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}", orderAdmin.Get).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}/status", orderAdmin.UpdateStatus).Methods("PUT")

	return router
}
