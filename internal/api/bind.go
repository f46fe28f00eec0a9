package api

import (
	"sync" // One-time validator registration

	"bank_reporting/internal/contracts" // XML payloads and their rules

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // XML binding
	"github.com/go-playground/validator/v10" // Validation engine
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// bindXML decodes the XML body into obj and validates its binding tags
func bindXML(c *gin.Context, obj any) error {
	validatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validatorsErr = contracts.RegisterValidators(v)
		}
	})
	if validatorsErr != nil {
		return validatorsErr
	}
	return c.ShouldBindWith(obj, binding.XML)
}
