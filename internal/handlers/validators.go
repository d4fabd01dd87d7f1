package handlers

import (
	"github.com/mprs-garage/repair_shop_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// init registers the repair-form validations with gin's binding engine so
// payloads are rejected before they reach the services.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("vehiclecategory", func(fl validator.FieldLevel) bool {
		return domain.IsValidVehicleCategory(domain.VehicleCategory(fl.Field().String()))
	})
	_ = v.RegisterValidation("damagelevel", func(fl validator.FieldLevel) bool {
		return domain.IsValidDamageLevel(domain.DamageLevel(fl.Field().String()))
	})
	_ = v.RegisterValidation("staffrole", func(fl validator.FieldLevel) bool {
		return domain.IsValidRole(domain.StaffRole(fl.Field().String()))
	})
}
