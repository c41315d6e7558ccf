package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestTrTelefon(t *testing.T) {
	v := newTestValidator(t)

	gecerli := []string{"05321234567", "5321234567", "+905321234567"}
	for _, telefon := range gecerli {
		assert.NoError(t, v.Var(telefon, "tr_telefon"), telefon)
	}

	gecersiz := []string{"0212 123 45 67", "532123456", "06321234567", "telefon"}
	for _, telefon := range gecersiz {
		assert.Error(t, v.Var(telefon, "tr_telefon"), telefon)
	}
}

func TestTrPlaka(t *testing.T) {
	v := newTestValidator(t)

	gecerli := []string{"06 AB 1234", "34ABC12", "81 A 99", "01 ŞT 123"}
	for _, plaka := range gecerli {
		assert.NoError(t, v.Var(plaka, "tr_plaka"), plaka)
	}

	gecersiz := []string{"00 AB 1234", "82 AB 123", "06 ABCD 12", "06 AB 1"}
	for _, plaka := range gecersiz {
		assert.Error(t, v.Var(plaka, "tr_plaka"), plaka)
	}
}

func TestSaatFormat(t *testing.T) {
	v := newTestValidator(t)

	gecerli := []string{"00:00", "09:30", "23:59"}
	for _, saat := range gecerli {
		assert.NoError(t, v.Var(saat, "saat_format"), saat)
	}

	gecersiz := []string{"24:00", "9:30", "12:60", "1230"}
	for _, saat := range gecersiz {
		assert.Error(t, v.Var(saat, "saat_format"), saat)
	}
}

func TestTarihFormat(t *testing.T) {
	v := newTestValidator(t)

	gecerli := []string{"2026-01-01", "2026-02-28", "2028-02-29"}
	for _, tarih := range gecerli {
		assert.NoError(t, v.Var(tarih, "tarih_format"), tarih)
	}

	gecersiz := []string{"01.01.2026", "2026-13-01", "2026-02-30", "2026-1-1"}
	for _, tarih := range gecersiz {
		assert.Error(t, v.Var(tarih, "tarih_format"), tarih)
	}
}
