// Package valid настраивает общий валидатор входящих запросов.
package valid

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// New возвращает validator с зарегистрированными правилами витрины:
//
//	category — значение из закрытого перечня категорий проектов.
//
// Имена полей в ошибках берутся из json-тегов.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// ошибка регистрации возможна только для пустого тега
	_ = v.RegisterValidation("category", validCategory)
	return v
}

func validCategory(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return models.Category(field.String()).Valid()
}
