package user

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/maitrya143/pravah/core"
	"github.com/maitrya143/pravah/core/center"
)

var (
	cityCodeTag  = "citycode"
	cityCodeText = "must contain a valid City Code (MDA or NGP)"
)

// InitValidators registers the volunteer-ID validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(cityCodeTag, cityCodeValidation)
	core.RegisterCustomTranslation(validate, translator, cityCodeTag, cityCodeText)
}

// cityCodeValidation checks that the value contains a known city code
// (case-insensitive, anywhere in the string).
func cityCodeValidation(fl validator.FieldLevel) bool {
	_, ok := center.ExtractCityCode(fl.Field().String())
	return ok
}
