package api

import (
	"context"  // Service calls
	"net/http" // HTTP status codes

	"bank_reporting/internal/contracts" // XML payloads
	"bank_reporting/internal/domain"    // Domain models
	"bank_reporting/internal/utils"     // Redis cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const resourceTransactions = "transactions"

// TransactionService is the transaction use-case layer consumed by the handlers
type TransactionService interface {
	GetByID(ctx context.Context, id uint) (*domain.Transaction, error)
	List(ctx context.Context, f domain.TransactionFilter) (domain.Page[domain.Transaction], error)
	Create(ctx context.Context, merchantID uint, op contracts.Operation) ([]domain.Transaction, error)
}

// GetTransactionHandler returns a transaction by id
func GetTransactionHandler(svc TransactionService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return getByIDHandler(resourceTransactions, svc.GetByID, cache, log)
}

// ListTransactionsHandler returns a page of transactions matching the query filters
func ListTransactionsHandler(svc TransactionService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return listHandler(resourceTransactions, parseTransactionQuery, svc.List, cache, log)
}

// CreateTransactionsHandler ingests an <Operation> batch under ?merchantId=
func CreateTransactionsHandler(svc TransactionService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		merchantID, err := parentID(c, "merchantId")
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		var req contracts.Operation // Bind XML request to struct
		if err := bindXML(c, &req); err != nil {
			badRequest(c, "Invalid operation document: "+err.Error())
			return
		}
		if _, err := svc.Create(c.Request.Context(), merchantID, req); err != nil {
			respondError(c, log, err)
			return
		}
		invalidateLists(c, cache, log, resourceTransactions)
		c.Status(http.StatusCreated)
	}
}
