package validation

import (
	"testing"

	contactdto "formgate/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *validator.Validate {
	v := validator.New()
	// gin's binding engine reads `binding` tags
	v.SetTagName("binding")
	RegisterValidators(v)
	return v
}

func TestFormatValidationErrorCoversExactlyInvalidFields(t *testing.T) {
	v := newTestValidator()

	req := contactdto.ContactRequest{
		// name and email missing
		Phone:       "2125551234",
		CountryCode: "+1",
		Subject:     "Project inquiry",
		Message:     "short", // below the 10 character minimum
	}

	err := v.Struct(req)
	require.Error(t, err)

	fieldErrors := FormatValidationError(err)
	assert.Len(t, fieldErrors, 3)
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "message")
	assert.NotContains(t, fieldErrors, "phone")
	assert.NotContains(t, fieldErrors, "subject")
}

func TestFormatValidationErrorUsesJSONFieldNames(t *testing.T) {
	v := newTestValidator()

	req := contactdto.ContactRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "2125551234",
		Subject:     "Hello",
		Message:     "A long enough message.",
		// countryCode missing
	}

	err := v.Struct(req)
	require.Error(t, err)

	fieldErrors := FormatValidationError(err)
	assert.Contains(t, fieldErrors, "countryCode")
	assert.NotContains(t, fieldErrors, "CountryCode")
}

func TestValidEmailAndNameTags(t *testing.T) {
	v := newTestValidator()

	req := contactdto.ContactRequest{
		Name:        "Jane Doe",
		Email:       "not-an-email",
		Phone:       "2125551234",
		CountryCode: "+1",
		Subject:     "Project inquiry",
		Message:     "We would like a quote for a new site.",
	}

	err := v.Struct(req)
	require.Error(t, err)

	fieldErrors := FormatValidationError(err)
	assert.Equal(t, map[string]string{"email": "Enter a valid email address"}, fieldErrors)
}

func TestNameCharsetRejected(t *testing.T) {
	v := newTestValidator()

	req := contactdto.ContactRequest{
		Name:        "Jane <img> Doe",
		Email:       "jane@example.com",
		Phone:       "2125551234",
		CountryCode: "+1",
		Subject:     "Project inquiry",
		Message:     "We would like a quote for a new site.",
	}

	err := v.Struct(req)
	require.Error(t, err)

	fieldErrors := FormatValidationError(err)
	assert.Equal(t, map[string]string{"name": "Contains invalid characters"}, fieldErrors)
}

func TestValidRequestPasses(t *testing.T) {
	v := newTestValidator()

	req := contactdto.ContactRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "2125551234",
		CountryCode: "+1",
		Subject:     "Project inquiry",
		Message:     "We would like a quote for a new site.",
	}

	assert.NoError(t, v.Struct(req))
}
