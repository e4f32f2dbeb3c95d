package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldToken    = "token"
)

// RequestValidator validates inbound request bodies with ozzo-validation.
//
// Registration, login and verification only check presence: the handlers
// answer any missing field with one fixed message, so every rule failure is
// reported as a single sentinel. Profile updates additionally require a
// well-formed email when one is given.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.VerifyRequest:
		return v.validateVerify(value)
	case *models.VerifyRequest:
		return v.validateVerify(*value)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldEmail:    validation.Field(&r.Email, validation.Required),
		FieldPassword: validation.Field(&r.Password, validation.Required),
		FieldName:     validation.Field(&r.Name, validation.Required),
	}

	if err := validateFields(&r, rules, fields); err != nil {
		return wrapAs(ErrMissingRegistrationFields, err)
	}

	if len(fields) > 0 && !slices.Contains(fields, FieldPassword) {
		return nil
	}
	err := validation.Validate(r.Password, validation.By(maxBytes(utils.MaxPasswordBytes)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
	}

	return nil
}

// maxBytes limits the byte length of a string. ozzo's Length counts runes.
func maxBytes(limit int) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if len(s) > limit {
			return fmt.Errorf("must be at most %d bytes long", limit)
		}
		return nil
	}
}

func (v *RequestValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldEmail:    validation.Field(&r.Email, validation.Required),
		FieldPassword: validation.Field(&r.Password, validation.Required),
	}

	return wrapAs(ErrMissingLoginFields, validateFields(&r, rules, fields))
}

func (v *RequestValidator) validateVerify(r models.VerifyRequest) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
	)

	return wrapAs(ErrMissingToken, err)
}

func (v *RequestValidator) validateProfileUpdate(u models.ProfileUpdate) error {
	err := validation.ValidateStruct(&u,
		validation.Field(&u.Email, is.Email),
	)

	return wrapAs(ErrInvalidEmail, err)
}

// validateFields runs the rules named in fields, or all rules when fields
// is empty, in a stable order.
func validateFields(structPtr any, rules map[string]*validation.FieldRules, fields []string) error {
	if len(fields) == 0 {
		for name := range rules {
			fields = append(fields, name)
		}
		slices.Sort(fields)
	}

	selected := make([]*validation.FieldRules, 0, len(fields))
	for _, name := range fields {
		rule, ok := rules[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		selected = append(selected, rule)
	}

	return validation.ValidateStruct(structPtr, selected...)
}

// wrapAs keeps ozzo's per-field detail while exposing a single sentinel.
func wrapAs(sentinel, err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	return fmt.Errorf("%w: %w", sentinel, errs)
}
