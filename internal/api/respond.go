package api

import (
	"fmt"      // Attachment names
	"net/http" // HTTP status codes

	"bank_reporting/internal/domain"     // Error kinds
	"bank_reporting/internal/export"     // CSV and XLSX rendering
	"bank_reporting/internal/middleware" // Request scoped logger

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	msgUnexpected = "An unexpected error occurred" // Body of every 500
)

// respondError maps err onto a status code and an {"error": ...} body.
// Unexpected errors are logged and never shown to the caller.
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.KindDuplicateEntity:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		middleware.Logger(c, log).WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,   // HTTP method
			"path":   c.Request.URL.Path, // Request path
		}).Error("Unexpected failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgUnexpected})
	}
}

// badRequest answers 400 with msg
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// attachment sends body as a downloadable file
func attachment(c *gin.Context, name, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, body)
}

// exportPage renders records in the requested format and reports whether it did
func exportPage[T any](c *gin.Context, log logrus.FieldLogger, resource string, format exportFormat, records []T) bool {
	switch format {
	case formatCSV:
		body, err := export.CSV(records)
		if err != nil {
			respondError(c, log, err)
			return true
		}
		attachment(c, resource+".csv", contentTypeCSV, body)
		return true
	case formatXLSX:
		body, err := export.XLSX(records, resource)
		if err != nil {
			respondError(c, log, err)
			return true
		}
		attachment(c, resource+".xlsx", contentTypeXLSX, body)
		return true
	}
	return false
}

// MethodNotAllowedHandler rejects update and delete requests on a resource
func MethodNotAllowedHandler(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb := "Updating"
		if c.Request.Method == http.MethodDelete {
			verb = "Deleting"
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": fmt.Sprintf("%s %s is not supported", verb, resource)})
	}
}
