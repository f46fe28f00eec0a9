package api

import (
	"context"  // Health check timeout
	"net/http" // HTTP status codes
	"time"     // Health check timeout

	"bank_reporting/internal/middleware" // Request id and logging
	"bank_reporting/internal/utils"      // Redis cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Deps are the collaborators the router wires into its handlers
type Deps struct {
	DB           *gorm.DB // Pinged by /healthz; may be nil in tests
	Partners     PartnerService
	Merchants    MerchantService
	Transactions TransactionService
	Cache        *utils.Cache // nil disables caching
	Log          logrus.FieldLogger
}

// NewRouter builds the gin engine serving every resource
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), middleware.LoggerMiddleware(d.Log), gin.Recovery())

	r.GET("/healthz", HealthHandler(d.DB))

	partners := r.Group("/" + resourcePartners)
	partners.GET("", ListPartnersHandler(d.Partners, d.Cache, d.Log))   // List partners
	partners.GET("/:id", GetPartnerHandler(d.Partners, d.Cache, d.Log)) // Get partner
	partners.POST("", CreatePartnerHandler(d.Partners, d.Cache, d.Log)) // Create partner
	readOnly(partners, resourcePartners)

	merchants := r.Group("/" + resourceMerchants)
	merchants.GET("", ListMerchantsHandler(d.Merchants, d.Cache, d.Log))   // List merchants
	merchants.GET("/:id", GetMerchantHandler(d.Merchants, d.Cache, d.Log)) // Get merchant
	merchants.POST("", CreateMerchantHandler(d.Merchants, d.Cache, d.Log)) // Create merchant
	readOnly(merchants, resourceMerchants)

	transactions := r.Group("/" + resourceTransactions)
	transactions.GET("", ListTransactionsHandler(d.Transactions, d.Cache, d.Log))    // List transactions
	transactions.GET("/:id", GetTransactionHandler(d.Transactions, d.Cache, d.Log))  // Get transaction
	transactions.POST("", CreateTransactionsHandler(d.Transactions, d.Cache, d.Log)) // Ingest a batch
	readOnly(transactions, resourceTransactions)

	return r
}

// readOnly rejects updates and deletes on the collection and its members
func readOnly(g *gin.RouterGroup, resource string) {
	h := MethodNotAllowedHandler(resource)
	for _, path := range []string{"", "/:id"} {
		g.PUT(path, h)
		g.DELETE(path, h)
	}
}

// HealthHandler reports whether the database answers a ping
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(ctx)
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
