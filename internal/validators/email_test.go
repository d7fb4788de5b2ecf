package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailFormatValid(t *testing.T) {
	assert.True(t, IsEmailFormatValid("ana@example.com"))
	assert.True(t, IsEmailFormatValid("a.b+c@sub.example.mx"))
	assert.False(t, IsEmailFormatValid("ana@example"))
	assert.False(t, IsEmailFormatValid("ana example@x.com"))
	assert.False(t, IsEmailFormatValid("@example.com"))
}

func TestIsPasswordValid(t *testing.T) {
	assert.True(t, IsPasswordValid("secret"))
	assert.True(t, IsPasswordValid("contraseña"))
	assert.False(t, IsPasswordValid("12345"))
	assert.False(t, IsPasswordValid("ñañañ"))
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
}
