package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("pesel", validatePesel)
	v.RegisterValidation("jobexecnum", validateJobExecutionNumber)
	v.RegisterValidation("nursinglicense", validateNursingLicenseNumber)
	v.RegisterValidation("prescriptioncode", validatePrescriptionCode)
	v.RegisterValidation("postcode", validatePostCode)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "pesel":
				errors[field] = field + " must be a valid 11-digit PESEL number"
			case "jobexecnum":
				errors[field] = field + " must be a valid 7-digit job execution number"
			case "nursinglicense":
				errors[field] = field + " must be a 7-digit nursing license number"
			case "prescriptioncode":
				errors[field] = field + " must consist of exactly 4 digits"
			case "postcode":
				errors[field] = field + " must match the XX-XXX postal code format"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

var (
	peselPattern            = regexp.MustCompile(`^\d{11}$`)
	jobExecPattern          = regexp.MustCompile(`^[1-9]\d{6}$`)
	nursingLicensePattern   = regexp.MustCompile(`^[1-9]\d{6}$`)
	prescriptionCodePattern = regexp.MustCompile(`^\d{4}$`)
	postCodePattern         = regexp.MustCompile(`^\d{2}-\d{3}$`)
)

// validatePesel checks the 11-digit PESEL number and its weighted checksum.
func validatePesel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !peselPattern.MatchString(value) {
		return false
	}

	weights := []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
	sum := 0
	for i, w := range weights {
		sum += w * int(value[i]-'0')
	}
	return (10-sum%10)%10 == int(value[10]-'0')
}

// validateJobExecutionNumber checks the 7-digit doctor license number.
// All seven digits weighted 1,3,7,9,1,3,7 must sum to a multiple of 10.
func validateJobExecutionNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !jobExecPattern.MatchString(value) {
		return false
	}

	weights := []int{1, 3, 7, 9, 1, 3, 7}
	sum := 0
	for i, w := range weights {
		sum += w * int(value[i]-'0')
	}
	return sum%10 == 0
}

func validateNursingLicenseNumber(fl validator.FieldLevel) bool {
	return nursingLicensePattern.MatchString(fl.Field().String())
}

func validatePrescriptionCode(fl validator.FieldLevel) bool {
	return prescriptionCodePattern.MatchString(fl.Field().String())
}

func validatePostCode(fl validator.FieldLevel) bool {
	return postCodePattern.MatchString(fl.Field().String())
}
