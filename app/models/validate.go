package models

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance for all model types.
var validate = validator.New()
