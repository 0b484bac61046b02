// Package validate создаёт валидатор входных данных, общий для HTTP и CLI.
package validate

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator"
)

// New возвращает валидатор, который называет поля по их json-тегам
// и понимает тег datetime=<layout>.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// v9 не знает datetime, без регистрации Struct паникует.
	if err := v.RegisterValidation("datetime", isDatetime); err != nil {
		panic(err)
	}
	return v
}

// isDatetime проверяет, что строка разбирается по layout из параметра тега.
// Пустая строка остаётся на совести required.
func isDatetime(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	if field.String() == "" {
		return true
	}
	_, err := time.Parse(fl.Param(), field.String())
	return err == nil
}
