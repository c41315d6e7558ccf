package dto

import (
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valilik-yonetim/pkg/customvalidator"
)

func newDTOValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	return v
}

func TestUpdateRandevuDTO_GecerliDurumDogrulamayiGecer(t *testing.T) {
	v := newDTOValidator(t)

	payload := UpdateRandevuDTO{Durum: null.StringFrom("Onaylandı")}
	assert.NoError(t, v.Struct(payload))

	payload = UpdateRandevuDTO{Durum: null.StringFrom("Beklenen Birime Havale")}
	assert.NoError(t, v.Struct(payload))
}

func TestUpdateRandevuDTO_GecersizDurumAlanHatasiDoner(t *testing.T) {
	v := newDTOValidator(t)

	err := v.Struct(UpdateRandevuDTO{Durum: null.StringFrom("Bilinmeyen")})
	require.Error(t, err)

	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs), "alan bazlı doğrulama hatası beklenir")
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "Durum", fieldErrs[0].Field())
	assert.Equal(t, "oneof", fieldErrs[0].Tag())
}

func TestUpdateRandevuDTO_GecersizSaatAlanHatasiDoner(t *testing.T) {
	v := newDTOValidator(t)

	err := v.Struct(UpdateRandevuDTO{Saat: null.StringFrom("25:70")})
	require.Error(t, err)

	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "saat_format", fieldErrs[0].Tag())
}

func TestUpdateRandevuDTO_GonderilmeyenAlanlarDogrulanmaz(t *testing.T) {
	v := newDTOValidator(t)

	// Hiçbir alan set edilmemiş boş yama doğrulamadan geçer.
	assert.NoError(t, v.Struct(UpdateRandevuDTO{}))
}

func TestCreateRandevuDTO_Dogrulama(t *testing.T) {
	v := newDTOValidator(t)

	gecerli := CreateRandevuDTO{
		AdSoyad: "Ali Yılmaz",
		Amac:    "Mahalle sorunları görüşmesi",
		Tarih:   "2026-09-01",
		Saat:    "09:30",
	}
	assert.NoError(t, v.Struct(gecerli))

	eksik := gecerli
	eksik.AdSoyad = ""
	err := v.Struct(eksik)
	require.Error(t, err)

	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "AdSoyad", fieldErrs[0].Field())
	assert.Equal(t, "required", fieldErrs[0].Tag())

	bozukSaat := gecerli
	bozukSaat.Saat = "9:30"
	err = v.Struct(bozukSaat)
	require.Error(t, err)
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "saat_format", fieldErrs[0].Tag())
}
