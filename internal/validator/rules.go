package validator

import (
	"log"
	"strings"

	"workhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации.
// Пустые значения правила пропускают: для этого есть 'required'.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	// при регистрации ADMIN выбрать нельзя
	mustRegister("is-signup-role", validateSignupRole)
	mustRegister("is-user-status", validateUserStatus)
	mustRegister("is-task-category", validateTaskCategory)
	mustRegister("is-availability", validateAvailability)
	mustRegister("is-currency", validateCurrency)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.UserRole(value).IsValid()
}

func validateSignupRole(fl validator.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case "", models.UserRoleClient, models.UserRoleWorker:
		return true
	}
	return false
}

func validateUserStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.UserStatus(value).IsValid()
}

func validateTaskCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.TaskCategory(value).IsValid()
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.Availability(value).IsValid()
}

func validateCurrency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if len(value) != 3 {
		return false
	}
	return strings.ToUpper(value) == value && strings.IndexFunc(value, func(r rune) bool {
		return r < 'A' || r > 'Z'
	}) < 0
}
