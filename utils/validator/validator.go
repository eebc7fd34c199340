package validatorx

import (
	"regexp"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	// digits with an optional leading +, 8 to 15 characters
	phoneRE = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

// Init initializes the validator singleton (idempotent) and registers the
// custom "phone" rule used by the account requests.
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("phone", func(fl gpvalidator.FieldLevel) bool {
		return phoneRE.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
