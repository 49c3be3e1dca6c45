package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type uhrzeitFeld struct {
	Wert string `validate:"omitempty,uhrzeit"`
}

type xssFeld struct {
	Wert string `validate:"no_xss"`
}

func TestValidateUhrzeit(t *testing.T) {
	InitValidator()

	for _, valid := range []string{"", "11:00", "9:05", "23:59", "0:00"} {
		assert.NoError(t, Validate.Struct(&uhrzeitFeld{Wert: valid}), "expected %q to pass", valid)
	}
	for _, invalid := range []string{"24:00", "11:60", "11", "ab:cd", "11:5"} {
		assert.Error(t, Validate.Struct(&uhrzeitFeld{Wert: invalid}), "expected %q to fail", invalid)
	}
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(&xssFeld{Wert: "Anna Müller"}))
	assert.Error(t, Validate.Struct(&xssFeld{Wert: "<script>alert(1)</script>"}))
	assert.Error(t, Validate.Struct(&xssFeld{Wert: "javascript:alert(1)"}))
}
