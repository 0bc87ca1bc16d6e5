package router

import (
	"net/http"
	"time"

	"catalogo/docs"
	"catalogo/internal/apierror"
	"catalogo/internal/config"
	"catalogo/internal/handler"
	"catalogo/internal/middleware"
	"catalogo/internal/repository"
	"catalogo/internal/service"
	"catalogo/internal/validation"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Handlers groups the handlers mounted under the API base path.
type Handlers struct {
	Products      *handler.ProductsHandler
	Categories    *handler.CategoriesHandler
	Subcategories *handler.SubcategoriesHandler
}

// NewHandlers wires Handler ← Service ← Repository ← DB.
func NewHandlers(db *gorm.DB) Handlers {
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)

	return Handlers{
		Products:      handler.NewProductsHandler(service.NewProductService(productRepo)),
		Categories:    handler.NewCategoriesHandler(service.NewCategoryService(categoryRepo)),
		Subcategories: handler.NewSubcategoriesHandler(service.NewSubcategoryService(subcategoryRepo)),
	}
}

// New wires all dependencies and returns a configured Gin engine. rdb may be
// nil, in which case rate limiting counts in process memory.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	var store middleware.RateStore = middleware.NewMemoryRateStore()
	if rdb != nil {
		store = middleware.NewRedisRateStore(rdb)
	}

	r := NewEngine(cfg, store)
	r.GET("/health", handler.Health(db, rdb))
	Mount(r.Group(cfg.BasePath), NewHandlers(db))

	// Swagger UI, only enabled outside production
	if !cfg.IsProduction() {
		docs.SwaggerInfo.BasePath = cfg.BasePath
		r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}

// NewEngine builds the engine with the global middleware chain and the 404
// fallback, without any routes.
func NewEngine(cfg *config.Config, store middleware.RateStore) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(store, cfg.RateLimitPerMinute, time.Minute))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierror.New(apierror.MsgRouteNotFound))
	})
	return r
}

// Mount registers the catalog routes on api.
func Mount(api *gin.RouterGroup, h Handlers) {
	products := api.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/:id", middleware.Validate(validation.ProductID), h.Products.GetByID)
		products.POST("", middleware.Validate(validation.CreateProduct), h.Products.Create)
		products.PUT("/:id", middleware.Validate(validation.UpdateProduct), h.Products.Update)
		products.PATCH("/:id", middleware.Validate(validation.ProductID), h.Products.ToggleAvailability)
		products.DELETE("/:id", middleware.Validate(validation.ProductID), h.Products.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.POST("", middleware.Validate(validation.CreateCategory), h.Categories.Create)
		categories.GET("", h.Categories.List)
	}

	subcategories := api.Group("/subcategories")
	{
		subcategories.POST("", middleware.Validate(validation.CreateSubcategory), h.Subcategories.Create)
		subcategories.GET("", h.Subcategories.List)
	}

	log.Debug().Str("base_path", api.BasePath()).Msg("catalog routes mounted")
}
