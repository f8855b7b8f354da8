package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	"github.com/go-playground/validator/v10"
)

type FormValidator struct {
	v *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.IsCategory(domain.Category(fl.Field().String()))
	})

	return &FormValidator{v: v}
}

// Validate returns nil when the form can be submitted.
func (fv *FormValidator) Validate(f *domain.EventForm) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if err := fv.v.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs["form"] = err.Error()
			return errs
		}
		for _, fe := range verrs {
			errs[fe.Field()] = fieldMessage(fe)
		}
	}

	if f.Kind == domain.EventKindPaid && f.Price != "" {
		if err := fv.v.Var(f.Price, "numeric"); err != nil {
			errs["price"] = "price must be a number"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "category":
		return "unknown category"
	default:
		return fe.Field() + " is invalid"
	}
}
