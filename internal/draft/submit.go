package draft

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Kabir14815/rr/internal/entity"

	"github.com/go-playground/validator/v10"
)

var _validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CanSubmit reports whether the draft may be sent to the consignment store.
// Once partner, service type and mode are all chosen, only a resolved rate
// card can price the consignment.
func CanSubmit(s State) error {
	const op = "draft.CanSubmit"

	if s.Draft.RateSelectionStarted() && s.Lookup != LookupResolved {
		return fmt.Errorf("%s: %w", op, entity.ErrRateCardPending)
	}
	if err := Validate(s.Draft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Validate checks the draft's own fields and returns the first failure as an
// *entity.ValidationError.
func Validate(d entity.Draft) error {
	if d.Weight.IsNegative() {
		return &entity.ValidationError{Field: FieldWeight, Message: "Weight must not be negative"}
	}

	err := _validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &entity.ValidationError{Field: "draft", Message: err.Error()}
	}

	fe := fieldErrs[0]
	return &entity.ValidationError{Field: fe.Field(), Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "numeric", "len":
		return label + " must be a 6 digit number"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func fieldLabel(field string) string {
	switch field {
	case FieldUserID:
		return "User"
	case FieldSenderName:
		return "Name"
	}
	label := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
