package api

import (
	"time" // Cache and token lifetimes

	"wallet_ledger/internal/cache"      // Type-filter cache
	"wallet_ledger/internal/middleware" // Custom package for middleware
	"wallet_ledger/internal/repository" // Storage layer
	"wallet_ledger/internal/service"    // Business logic

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Deps are the collaborators the HTTP surface is built from
type Deps struct {
	DB                 *gorm.DB      // Relational store
	Redis              *redis.Client // Cache backend
	JWTSecret          string        // Token signing key
	JWTTTL             time.Duration // Lifetime of issued tokens
	ItemsPerPage       int           // Page size of the date-range query
	TypeCacheTTL       time.Duration // Expiry of type-filter cache entries
	StrictWalletAccess bool          // Guard type and sum queries with the wallet link check too
}

// NewRouter wires repositories, services and handlers into a gin engine
func NewRouter(d Deps) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	// Storage layer
	users := repository.NewUserRepository(d.DB)
	wallets := repository.NewWalletRepository(d.DB)
	links := repository.NewUserWalletRepository(d.DB)
	items := repository.NewWalletItemRepository(d.DB)

	// Services
	userSvc := service.NewUserService(users)
	walletSvc := service.NewWalletService(wallets)
	linkSvc := service.NewUserWalletService(links, users, wallets)
	accessSvc := service.NewAccessService(links)
	itemSvc := service.NewWalletItemService(items, wallets, cache.NewTypeCache(d.Redis, d.TypeCacheTTL), d.ItemsPerPage)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// Public routes
	r.GET("/health", HealthHandler(d.DB, d.Redis))
	r.POST("/user", RegisterHandler(userSvc))
	r.POST("/auth", LoginHandler(userSvc, d.JWTSecret, d.JWTTTL))

	// Everything else requires a token
	protected := r.Group("/", middleware.JWTAuthMiddleware(d.JWTSecret))
	protected.POST("/wallet", CreateWalletHandler(walletSvc))
	protected.POST("/user-wallet", CreateUserWalletHandler(linkSvc))

	walletAccess := middleware.WalletAccessMiddleware(accessSvc, "wallet")
	// guarded prepends the link check to read routes when strict access is on
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if d.StrictWalletAccess {
			return []gin.HandlerFunc{walletAccess, h}
		}
		return []gin.HandlerFunc{h}
	}

	itemGroup := protected.Group("/wallet-item")
	itemGroup.POST("", CreateWalletItemHandler(itemSvc))
	itemGroup.PUT("", UpdateWalletItemHandler(itemSvc))
	itemGroup.DELETE("/:id", DeleteWalletItemHandler(itemSvc))
	itemGroup.GET("/:wallet", walletAccess, FindBetweenDatesHandler(itemSvc))
	itemGroup.GET("/type/:wallet", guarded(FindByTypeHandler(itemSvc))...)
	itemGroup.GET("/total/:wallet", guarded(SumHandler(itemSvc))...)

	return r, nil
}
