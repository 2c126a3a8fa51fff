package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/helpers"
)

// Custom binding tags
const (
	// TagDate accepts a calendar day written YYYY-MM-DD.
	TagDate = "isodate"
	// TagClock accepts a time of day written HH:MM or HH:MM:SS.
	TagClock = "clock"
	// TagRole accepts admin, teacher or student.
	TagRole = "role"
)

var rules = map[string]validator.Func{
	TagDate: func(fl validator.FieldLevel) bool {
		_, err := helpers.ParseDate(fl.Field().String())
		return err == nil
	},
	TagClock: func(fl validator.FieldLevel) bool {
		_, err := helpers.ParseClock(fl.Field().String())
		return err == nil
	},
	TagRole: func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	},
}

// Register adds the custom rules to v
func Register(v *validator.Validate) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}

var (
	ginOnce sync.Once
	ginErr  error
)

// RegisterWithGin adds the custom rules to gin's binding validator. Safe to call repeatedly.
func RegisterWithGin() error {
	ginOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			ginErr = errors.New("gin binding engine is not a validator.Validate")
			return
		}
		ginErr = Register(v)
	})
	return ginErr
}

// New returns a standalone validator reading gin's "binding" tags with the custom rules installed.
func New() (*validator.Validate, error) {
	v := validator.New()
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}
