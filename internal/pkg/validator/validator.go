package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/passeio/internal/pkg/errs"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their wire name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	validate.RegisterValidation("lat", func(fl validator.FieldLevel) bool {
		lat := fl.Field().Float()
		return lat >= -90 && lat <= 90
	})
	validate.RegisterValidation("lng", func(fl validator.FieldLevel) bool {
		lng := fl.Field().Float()
		return lng >= -180 && lng <= 180
	})
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	validate.RegisterValidation("trimmedmin", func(fl validator.FieldLevel) bool {
		min, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len([]rune(strings.TrimSpace(fl.Field().String()))) >= min
	})
	validate.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && n > 0
	})
	validate.RegisterValidation("posnumber", func(fl validator.FieldLevel) bool {
		s := strings.Replace(strings.TrimSpace(fl.Field().String()), ",", ".", 1)
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && f > 0
	})
}

// ValidateStruct checks s against its validate tags. Failures come back as
// *errs.ValidationError keyed by wire field name.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &errs.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(fe))
	}
	return verr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min", "trimmedmin":
		return "deve ter pelo menos " + fe.Param() + " caracteres"
	case "eqfield":
		return "as senhas não coincidem"
	case "posint", "posnumber":
		return "deve ser um número positivo"
	case "datetime":
		return "formato inválido, use " + fe.Param()
	case "lat", "lng":
		return "coordenada fora do intervalo"
	default:
		return "valor inválido"
	}
}
