package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type peselInput struct {
	Pesel string `validate:"pesel"`
}

type jobExecInput struct {
	JobExecutionNumber string `validate:"jobexecnum"`
}

type nursingLicenseInput struct {
	NursingLicenseNumber string `validate:"nursinglicense"`
}

type prescriptionCodeInput struct {
	PrescriptionCode string `validate:"prescriptioncode"`
}

type postCodeInput struct {
	PostCode string `validate:"postcode"`
}

func TestValidatePesel(t *testing.T) {
	cv := NewValidator()

	valid := []string{"44051401359", "02270803624"}
	for _, pesel := range valid {
		assert.NoError(t, cv.Validate(peselInput{Pesel: pesel}), pesel)
	}

	invalid := []string{
		"44051401358", // wrong checksum
		"4405140135",  // too short
		"440514013590",
		"4405140135a",
		"",
	}
	for _, pesel := range invalid {
		assert.Error(t, cv.Validate(peselInput{Pesel: pesel}), pesel)
	}
}

func TestValidateJobExecutionNumber(t *testing.T) {
	cv := NewValidator()

	assert.NoError(t, cv.Validate(jobExecInput{JobExecutionNumber: "1234569"}))

	invalid := []string{
		"1234568", // wrong checksum
		"0234569", // leading zero
		"123456",
		"12345690",
		"123456a",
	}
	for _, num := range invalid {
		assert.Error(t, cv.Validate(jobExecInput{JobExecutionNumber: num}), num)
	}
}

func TestValidateNursingLicenseNumber(t *testing.T) {
	cv := NewValidator()

	assert.NoError(t, cv.Validate(nursingLicenseInput{NursingLicenseNumber: "1234567"}))
	assert.Error(t, cv.Validate(nursingLicenseInput{NursingLicenseNumber: "0234567"}))
	assert.Error(t, cv.Validate(nursingLicenseInput{NursingLicenseNumber: "123456"}))
	assert.Error(t, cv.Validate(nursingLicenseInput{NursingLicenseNumber: "1234567a"}))
}

func TestValidatePrescriptionCode(t *testing.T) {
	cv := NewValidator()

	assert.NoError(t, cv.Validate(prescriptionCodeInput{PrescriptionCode: "0042"}))
	assert.Error(t, cv.Validate(prescriptionCodeInput{PrescriptionCode: "042"}))
	assert.Error(t, cv.Validate(prescriptionCodeInput{PrescriptionCode: "00042"}))
	assert.Error(t, cv.Validate(prescriptionCodeInput{PrescriptionCode: "00a2"}))
}

func TestValidatePostCode(t *testing.T) {
	cv := NewValidator()

	assert.NoError(t, cv.Validate(postCodeInput{PostCode: "00-950"}))
	assert.Error(t, cv.Validate(postCodeInput{PostCode: "00950"}))
	assert.Error(t, cv.Validate(postCodeInput{PostCode: "000-95"}))
	assert.Error(t, cv.Validate(postCodeInput{PostCode: "ab-cde"}))
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	type registration struct {
		Email string `validate:"required,email"`
		Pesel string `validate:"pesel"`
	}

	err := cv.Validate(registration{Email: "not-an-email", Pesel: "123"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Pesel must be a valid 11-digit PESEL number", formatted["Pesel"])
}
