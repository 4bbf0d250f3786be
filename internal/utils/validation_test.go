package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecordID(t *testing.T) {
	assert.NoError(t, ValidateRecordID("hr-123"))
	assert.NoError(t, ValidateRecordID("550e8400-e29b-41d4-a716-446655440000"))
	assert.NoError(t, ValidateRecordID("-MkA9x_legacy"))

	assert.ErrorIs(t, ValidateRecordID(""), ErrEmptyID)
	assert.ErrorIs(t, ValidateRecordID("id with spaces"), ErrInvalidIDFormat)
	assert.ErrorIs(t, ValidateRecordID("id;drop"), ErrInvalidIDFormat)
	assert.ErrorIs(t, ValidateRecordID(strings.Repeat("a", 65)), ErrIDTooLong)
}

func TestValidateDisplayName(t *testing.T) {
	assert.NoError(t, ValidateDisplayName("João Pereira"))
	assert.NoError(t, ValidateDisplayName("Pra. Lúcia"))

	assert.ErrorIs(t, ValidateDisplayName("   "), ErrEmptyName)
	assert.ErrorIs(t, ValidateDisplayName(strings.Repeat("x", 256)), ErrNameTooLong)
	assert.ErrorIs(t, ValidateDisplayName("<script>alert(1)</script>"), ErrDangerousChars)
	assert.ErrorIs(t, ValidateDisplayName("a'; drop table members"), ErrDangerousChars)
}

func TestValidateSortField(t *testing.T) {
	assert.NoError(t, ValidateSortField("created_at"))
	assert.NoError(t, ValidateSortField("help_requests.status"))

	assert.Error(t, ValidateSortField(""))
	assert.Error(t, ValidateSortField("created_at; drop table"))
	assert.Error(t, ValidateSortField("1 UNION SELECT"))
}

func TestValidateSortOrder(t *testing.T) {
	assert.NoError(t, ValidateSortOrder("asc"))
	assert.NoError(t, ValidateSortOrder(" DESC "))
	assert.Error(t, ValidateSortOrder("sideways"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;olá&lt;/b&gt;", SanitizeString("<b>olá</b>"))
	assert.Equal(t, "linha1\nlinha2", SanitizeString("linha1\nlinha2\x00"))
}

func TestTrimAndValidate(t *testing.T) {
	got, err := TrimAndValidate("  Ana Costa  ", 100)
	require.NoError(t, err)
	assert.Equal(t, "Ana Costa", got)

	_, err = TrimAndValidate("   ", 100)
	assert.ErrorIs(t, err, ErrEmptyString)

	_, err = TrimAndValidate(strings.Repeat("a", 101), 100)
	assert.ErrorIs(t, err, ErrStringTooLong)
}

func TestAccessCodeHashRoundTrip(t *testing.T) {
	hashed, err := HashAccessCode("segredo123")
	require.NoError(t, err)
	assert.True(t, VerifyAccessCode("segredo123", hashed))
	assert.False(t, VerifyAccessCode("errado", hashed))
}
