package customvalidator

import (
	"reflect"
	"regexp"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations, alana özgü doğrulama kurallarını tek noktadan kaydeder.
func RegisterCustomValidations(v *validator.Validate) error {
	registerNullTypes(v)

	if err := v.RegisterValidation("tr_telefon", isTurkishPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("tr_plaka", isTurkishPlate); err != nil {
		return err
	}
	if err := v.RegisterValidation("saat_format", isValidClockTime); err != nil {
		return err
	}
	if err := v.RegisterValidation("tarih_format", isValidDate); err != nil {
		return err
	}
	return nil
}

// registerNullTypes, doğrulayıcıya null.* tiplerinin içini okutmayı öğretir.
// Valid olmayan alanlar nil döner, böylece omitempty kuralı devreye girer.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Int); ok && val.Valid {
			return val.Int
		}
		return nil
	}, null.Int{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Bool); ok && val.Valid {
			return val.Bool
		}
		return nil
	}, null.Bool{})
}

var (
	phoneRegex = regexp.MustCompile(`^(\+90|0)?5\d{9}$`)
	plateRegex = regexp.MustCompile(`^(0[1-9]|[1-7]\d|8[01]) ?[A-ZÇĞİÖŞÜ]{1,3} ?\d{2,4}$`)
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func isTurkishPhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// 81 il kodu + 1-3 harf + 2-4 rakam. Boşluklu ve boşluksuz yazım kabul edilir.
func isTurkishPlate(fl validator.FieldLevel) bool {
	return plateRegex.MatchString(fl.Field().String())
}

func isValidClockTime(fl validator.FieldLevel) bool {
	return clockRegex.MatchString(fl.Field().String())
}

func isValidDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
