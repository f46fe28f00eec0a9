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

const resourcePartners = "partners"

// PartnerService is the partner use-case layer consumed by the handlers
type PartnerService interface {
	GetByID(ctx context.Context, id uint) (*domain.Partner, error)
	List(ctx context.Context, page domain.PageFilter) (domain.Page[domain.Partner], error)
	Create(ctx context.Context, in contracts.Partner) (*domain.Partner, error)
}

// GetPartnerHandler returns a partner by id
func GetPartnerHandler(svc PartnerService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return getByIDHandler(resourcePartners, svc.GetByID, cache, log)
}

// ListPartnersHandler returns a page of partners
func ListPartnersHandler(svc PartnerService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return listHandler(resourcePartners, parsePartnerQuery, svc.List, cache, log)
}

// CreatePartnerHandler registers a partner from a <Partner> document
func CreatePartnerHandler(svc PartnerService, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contracts.Partner // Bind XML request to struct
		if err := bindXML(c, &req); err != nil {
			badRequest(c, "Invalid partner document: "+err.Error())
			return
		}
		if _, err := svc.Create(c.Request.Context(), req); err != nil {
			respondError(c, log, err)
			return
		}
		invalidateLists(c, cache, log, resourcePartners)
		c.Status(http.StatusCreated)
	}
}
