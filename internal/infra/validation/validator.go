// Package validation wraps go-playground/validator and turns its failures
// into per-field Persian messages.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "biaresh/internal/domain/errors"
	"biaresh/internal/domain/service"
	"biaresh/internal/errors"

	"github.com/go-playground/validator/v10"
)

// messageTag names the struct tag holding the field's user-facing message.
const messageTag = "msg"

var (
	iranMobile   = regexp.MustCompile(`^(\+98|0)?9\d{9}$`)
	turkeyMobile = regexp.MustCompile(`^(\+90|0)?5\d{9}$`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// fallback messages by validator tag
var defaultMessages = map[string]string{
	"required": "این فیلد الزامی است",
	"email":    "ایمیل وارد شده معتبر نیست",
	"mobile":   "شماره تلفن معتبر نیست",
	"gt":       "مقدار باید بیشتر از صفر باشد",
	"oneof":    "مقدار انتخاب شده معتبر نیست",
	"min":      "مقدار وارد شده کوتاه است",
	"max":      "مقدار وارد شده طولانی است",
}

// Validator implements service.InputValidator and echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a validator reporting fields by their json names
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	_ = validate.RegisterValidation("mobile", validateMobile)
	_ = validate.RegisterValidation("trimmed_required", validateTrimmedRequired)

	return &Validator{validate: validate}
}

// NewInputValidator exposes the validator as the domain interface
func NewInputValidator(v *Validator) service.InputValidator {
	return v
}

// Struct validates input and returns *domainerrors.ValidationError on failure
func (v *Validator) Struct(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	root := reflect.TypeOf(input)
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, exists := fields[fe.Field()]; exists {
			continue
		}
		fields[fe.Field()] = messageFor(root, fe)
	}

	return domainerrors.NewValidationError(fields)
}

// Validate satisfies echo.Validator
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

// NormalizePhone strips all whitespace from a phone number
func NormalizePhone(phone string) string {
	return whitespace.ReplaceAllString(phone, "")
}

// IsMobile reports whether phone is an Iranian or Turkish mobile number
func IsMobile(phone string) bool {
	normalized := NormalizePhone(phone)

	return iranMobile.MatchString(normalized) || turkeyMobile.MatchString(normalized)
}

func validateMobile(fl validator.FieldLevel) bool {
	return IsMobile(fl.Field().String())
}

func validateTrimmedRequired(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// messageFor prefers the msg tag on the failing field, then the tag default.
func messageFor(root reflect.Type, fe validator.FieldError) string {
	if field, ok := lookupField(root, fe.StructNamespace()); ok {
		if msg := field.Tag.Get(messageTag); msg != "" {
			return msg
		}
	}

	tag := fe.Tag()
	if tag == "trimmed_required" {
		tag = "required"
	}
	if msg, ok := defaultMessages[tag]; ok {
		return msg
	}

	return domainerrors.ErrValidationFailed.Message()
}

// lookupField walks a namespace like "CheckoutInput.Customer.FirstName".
func lookupField(root reflect.Type, namespace string) (reflect.StructField, bool) {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}

	current := root
	var field reflect.StructField
	for _, part := range parts[1:] {
		for current.Kind() == reflect.Pointer {
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}

		if idx := strings.IndexByte(part, '['); idx >= 0 {
			part = part[:idx]
		}

		var ok bool
		field, ok = current.FieldByName(part)
		if !ok {
			return reflect.StructField{}, false
		}
		current = field.Type
		for current.Kind() == reflect.Slice || current.Kind() == reflect.Array {
			current = current.Elem()
		}
	}

	return field, true
}
