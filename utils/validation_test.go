package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid, _ := ValidateEmail("dealer@aqgbathrooms.com")
	assert.True(t, valid)

	for _, email := range []string{"", "not-an-email", "missing@tld", "@nouser.com"} {
		valid, msg := ValidateEmail(email)
		assert.False(t, valid, email)
		assert.NotEmpty(t, msg)
	}
}

func TestValidatePassword(t *testing.T) {
	valid, _ := ValidatePassword("Correcto1Horse")
	assert.True(t, valid)

	cases := []string{
		"short1A",          // too short
		"alllowercase1",    // no uppercase
		"ALLUPPERCASE1",    // no lowercase
		"NoNumbersHere",    // no digit
	}
	for _, password := range cases {
		valid, msg := ValidatePassword(password)
		assert.False(t, valid, password)
		assert.NotEmpty(t, msg)
	}
}

func TestValidateRALCode(t *testing.T) {
	for _, code := range []string{"RAL 7016", "RAL7016", "7016", "ral 9010"} {
		valid, _ := ValidateRALCode(code)
		assert.True(t, valid, code)
	}

	for _, code := range []string{"", "RAL", "colorful", "70"} {
		valid, _ := ValidateRALCode(code)
		assert.False(t, valid, code)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Baño principal", SanitizeString("  Baño principal  "))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>ref"), "<script>")
}
