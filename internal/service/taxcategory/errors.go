package taxcategory

import "errors"

// Sentinel errors for the tax-category service layer.
var (
	ErrNotFound     = errors.New("tax category not found")
	ErrNameRequired = errors.New("tax category name is required")
)
