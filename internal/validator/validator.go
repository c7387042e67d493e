package validator

import (
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/senshi-dojo/dojo-backend/internal/model"
)

// trans is the singleton English translator for validation errors.
var (
	trans     ut.Translator
	setupOnce sync.Once
)

// Setup registers the validator with English translations and the custom
// rules on Gin's binding engine. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			return
		}

		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		_ = v.RegisterValidation("isodate", isoDate)
		_ = v.RegisterTranslation("isodate", trans,
			func(ut ut.Translator) error {
				return ut.Add("isodate", "{0} must be a date (YYYY-MM-DD) or an RFC 3339 timestamp", true)
			},
			func(ut ut.Translator, fe govalidator.FieldError) string {
				msg, _ := ut.T("isodate", fe.Field())
				return msg
			},
		)

		_ = v.RegisterValidation("bcryptlen", bcryptLen)
		_ = v.RegisterTranslation("bcryptlen", trans,
			func(ut ut.Translator) error {
				return ut.Add("bcryptlen", "{0} must be at most {1} bytes long", true)
			},
			func(ut ut.Translator, fe govalidator.FieldError) string {
				msg, _ := ut.T("bcryptlen", fe.Field(), strconv.Itoa(maxPasswordBytes))
				return msg
			},
		)
	})
}

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

// bcryptLen counts bytes rather than runes, unlike max.
func bcryptLen(fl govalidator.FieldLevel) bool {
	return len(fl.Field().String()) <= maxPasswordBytes
}

// isoDate accepts the formats understood by model.ParseSessionDate.
func isoDate(fl govalidator.FieldLevel) bool {
	_, err := model.ParseSessionDate(fl.Field().String())
	return err == nil
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if trans != nil {
				fields[fe.Field()] = fe.Translate(trans)
			} else {
				fields[fe.Field()] = fe.Error()
			}
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// An empty body is treated as an empty JSON object, so required fields are
// still reported by name. Returns nil on success or a translated field map.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err != nil {
		return TranslateErrors(err)
	}
	return nil
}
