package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "11144477735", NormalizeCPF("111.444.777-35"))
	assert.Equal(t, "11144477735", NormalizeCPF("11144477735"))
	assert.Equal(t, "", NormalizeCPF("abc"))
	assert.Equal(t, "", NormalizeCPF(""))
}

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"formatted valid", "111.444.777-35", true},
		{"digits only valid", "52998224725", true},
		{"wrong check digit", "111.444.777-36", false},
		{"all same digits", "111.111.111-11", false},
		{"too short", "1114447773", false},
		{"too long", "111444777350", false},
		{"empty", "", false},
		{"letters", "abc.def.ghi-jk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCPF(tt.cpf))
		})
	}
}
