package contracts

import (
	"github.com/go-playground/validator/v10"                         // Validation engine behind gin's binding
	"github.com/go-playground/validator/v10/non-standard/validators" // notblank
)

// RegisterValidators adds the rules used by the binding tags of this package
// to v. It is safe to call more than once.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("notblank", validators.NotBlank)
}
