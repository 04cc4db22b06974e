package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameRule(t *testing.T) {
	vd := New()

	tests := []struct {
		name     string
		value    string
		messages []string
	}{
		{"valid", "John Doe", nil},
		{"digits rejected", "John123", []string{"Name must contain only letters and spaces"}},
		{"too short", "J", []string{"Name must be between 2 and 50 characters"}},
		{"empty collects every failure", "", []string{
			"Name is required",
			"Name must be between 2 and 50 characters",
			"Name must contain only letters and spaces",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := vd.Name(tt.value)
			var got []string
			for _, e := range errs {
				assert.Equal(t, "name", e.Field)
				got = append(got, e.Message)
			}
			assert.Equal(t, tt.messages, got)
		})
	}
}

func TestEmailRule(t *testing.T) {
	vd := New()

	assert.Empty(t, vd.Email("john@example.com"))
	assert.Empty(t, vd.Email("  john@example.com  "), "surrounding whitespace is trimmed")

	errs := vd.Email("not-an-email")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "Please enter valid email", errs[0].Message)
	}
	assert.NotEmpty(t, vd.Email(""))
}

func TestPasswordRule(t *testing.T) {
	vd := New()

	assert.Empty(t, vd.Password("Passw0rd!"))

	errs := vd.Password("password")
	if assert.Len(t, errs, 1, "length ok, character classes missing") {
		assert.Equal(t, "Password must contain at least one uppercase letter, one lowercase letter, one digit, and one special character", errs[0].Message)
	}

	assert.NotEmpty(t, vd.Password("Short1!"), "under 8 characters")
	assert.NotEmpty(t, vd.Password("Passw0rd#"), "# is outside the allowed symbol set")
}

func TestPhoneRule(t *testing.T) {
	vd := New()

	assert.Empty(t, vd.Phone("1234567890"))

	errs := vd.Phone("12345")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Phone number must be 10 digits", errs[0].Message)
	}

	errs = vd.Phone("123456789a")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Phone number must contain only numeric characters", errs[0].Message)
	}
}

func TestIDQueryRule(t *testing.T) {
	vd := New()

	assert.Empty(t, vd.IDQuery("651f1f77bcf86cd799439011"))

	errs := vd.IDQuery("")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "id", errs[0].Field)
		assert.Equal(t, "Id is Required...", errs[0].Message)
	}
}

func TestCollectKeepsOrder(t *testing.T) {
	vd := New()

	errs := Collect(
		vd.Name(""),
		vd.Email(""),
		vd.Password(""),
		vd.Phone(""),
	)
	assert.Len(t, errs, 10, "every failed check across every chain is reported")
	assert.Equal(t, "Name is required", errs[0].Message)
	assert.Equal(t, "Phone number must be 10 digits", errs[len(errs)-1].Message)

	assert.Empty(t, Collect(vd.Name("John Doe"), vd.Phone("1234567890")))
}
