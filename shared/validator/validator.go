package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"

	"escapade/shared/constant"
	"escapade/shared/duration"
	"escapade/shared/failure"
	"escapade/shared/timezone"
)

var validate *val.Validate

var (
	frenchPhonePattern = regexp.MustCompile(`^(\+33|0)[1-9]\d{8}$`)
	humanNamePattern   = regexp.MustCompile(`^[\p{L}][\p{L} '-]*$`)
)

// registerFrenchPhone accepts French mobile/landline numbers, ignoring any
// whitespace the caller typed.
func registerFrenchPhone(field val.FieldLevel) bool {
	phone := strings.Join(strings.Fields(field.Field().String()), "")

	return frenchPhonePattern.MatchString(phone)
}

// registerHumanName accepts letters (accents included), spaces, hyphens and
// apostrophes.
func registerHumanName(field val.FieldLevel) bool {
	return humanNamePattern.MatchString(field.Field().String())
}

// registerFutureDate accepts a YYYY-MM-DD value resolving to a calendar day
// strictly after today in the application timezone.
func registerFutureDate(field val.FieldLevel) bool {
	day, err := timezone.Parse(constant.DateFormat, field.Field().String())
	if err != nil {
		return false
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())

	return day.After(today)
}

// registerDuration accepts values matching the activity duration grammar,
// e.g. "5h30", "5h" or "5".
func registerDuration(field val.FieldLevel) bool {
	return duration.Valid(field.Field().String())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	registrations := map[string]val.Func{
		"frphone":    registerFrenchPhone,
		"humanname":  registerHumanName,
		"futuredate": registerFutureDate,
		"duration":   registerDuration,
	}

	for tag, fn := range registrations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateStructAll runs every rule on the struct and returns one message per
// failing field, so a whole form step can surface its errors together.
func ValidateStructAll[T any](data *T) []string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	return messages(err)
}
