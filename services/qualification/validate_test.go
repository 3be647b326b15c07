package qualification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() SubmitInput {
	return SubmitInput{
		FirstName:          "Ada",
		LastName:           "Lovelace",
		Email:              "ada@example.com",
		Phone:              "0712345678",
		BusinessName:       "Ada Tours",
		BusinessAddress:    "12 Riverside Dr",
		BusinessCity:       "Nairobi",
		BusinessState:      "Nairobi",
		BusinessZip:        "00100",
		BusinessPhone:      "0787654321",
		BusinessEmail:      "info@adatours.example",
		BusinessWebsite:    "https://adatours.example",
		RegistrationNumber: "REG-12345",
		LicenseNumber:      "LIC-99",
		TaxID:              "123456789",
		ProviderType:       "tour",
		ServiceDetails:     "Guided day tours around the Rift Valley.",
		Experience:         4,
	}
}

func TestValidateAcceptsCompleteInput(t *testing.T) {
	v := newValidator()
	input := validInput()
	assert.Nil(t, validateSubmitInput(v, &input))
}

func TestValidateWebsiteIsOptional(t *testing.T) {
	v := newValidator()
	input := validInput()
	input.BusinessWebsite = ""
	assert.Nil(t, validateSubmitInput(v, &input))
}

func TestValidateExtendedZipAccepted(t *testing.T) {
	v := newValidator()
	input := validInput()
	input.BusinessZip = "00100-1234"
	assert.Nil(t, validateSubmitInput(v, &input))
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	v := newValidator()
	input := validInput()
	input.FirstName = ""
	input.Email = "not-an-email"
	input.Phone = "12345"
	input.BusinessZip = "abcde"
	input.TaxID = "1234"
	input.RegistrationNumber = "R1"
	input.LicenseNumber = "L"
	input.BusinessWebsite = "ftp://adatours.example"
	input.ProviderType = "submarine"
	input.Experience = 0

	verr := validateSubmitInput(v, &input)
	require.NotNil(t, verr)

	for _, field := range []string{
		"first_name", "email", "phone", "business_zip", "tax_id",
		"registration_number", "license_number", "business_website",
		"provider_type", "experience",
	} {
		assert.Contains(t, verr.Fields, field)
	}
	// One pass, every violation collected, nothing else flagged.
	assert.Len(t, verr.Fields, 10)
}

func TestValidateTaxIDBounds(t *testing.T) {
	v := newValidator()

	for _, taxID := range []string{"123456789", "123456789012"} {
		input := validInput()
		input.TaxID = taxID
		assert.Nil(t, validateSubmitInput(v, &input), "tax id %s should be valid", taxID)
	}
	for _, taxID := range []string{"12345678", "1234567890123", "12345678a"} {
		input := validInput()
		input.TaxID = taxID
		verr := validateSubmitInput(v, &input)
		require.NotNil(t, verr, "tax id %s should be rejected", taxID)
		assert.Contains(t, verr.Fields, "tax_id")
	}
}
