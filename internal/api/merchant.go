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

const resourceMerchants = "merchants"

// MerchantService is the merchant use-case layer consumed by the handlers
type MerchantService interface {
	GetByID(ctx context.Context, id uint) (*domain.Merchant, error)
	List(ctx context.Context, f domain.MerchantFilter) (domain.Page[domain.Merchant], error)
	Create(ctx context.Context, partnerID uint, in contracts.Merchant) (*domain.Merchant, error)
}

// GetMerchantHandler returns a merchant by id
func GetMerchantHandler(svc MerchantService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return getByIDHandler(resourceMerchants, svc.GetByID, cache, log)
}

// ListMerchantsHandler returns a page of merchants filtered by country and partnerId
func ListMerchantsHandler(svc MerchantService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return listHandler(resourceMerchants, parseMerchantQuery, svc.List, cache, log)
}

// CreateMerchantHandler boards a merchant from a <Merchant> document under ?partnerId=
func CreateMerchantHandler(svc MerchantService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID, err := parentID(c, "partnerId")
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		var req contracts.Merchant // Bind XML request to struct
		if err := bindXML(c, &req); err != nil {
			badRequest(c, "Invalid merchant document: "+err.Error())
			return
		}
		if _, err := svc.Create(c.Request.Context(), partnerID, req); err != nil {
			respondError(c, log, err)
			return
		}
		invalidateLists(c, cache, log, resourceMerchants)
		c.Status(http.StatusCreated)
	}
}
