package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// FormValidator plugs go-playground/validator into echo so handlers can call
// c.Validate on bound form structs.
type FormValidator struct {
	validate *validator.Validate
}

// NewValidator creates a FormValidator.
func NewValidator() *FormValidator {
	return &FormValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *FormValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// bindForm binds the posted form into dst and validates it when a validator
// is registered.
func bindForm(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return fmt.Errorf("bind form: %w", err)
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(dst); err != nil {
		return fmt.Errorf("validate form: %w", err)
	}
	return nil
}
