package request

import (
	"reflect"
	"strings"
	"sync"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/domain/trip"
	"travelmate/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the enum tags used by the request DTOs to gin's
// validator and makes field errors report JSON names. Safe to call more
// than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errs.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonName)
		for tag, fn := range map[string]validator.Func{
			"cabinclass": func(fl validator.FieldLevel) bool {
				return catalog.CabinClass(fl.Field().String()).IsValid()
			},
			"dealtype": func(fl validator.FieldLevel) bool {
				return catalog.DealType(fl.Field().String()).IsValid()
			},
			"tripstatus": func(fl validator.FieldLevel) bool {
				return trip.Status(fl.Field().String()).IsValid()
			},
		} {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
