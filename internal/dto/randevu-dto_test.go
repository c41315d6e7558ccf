package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRandevuDTO_SadeceGonderilenAlanlarHaritayaGirer(t *testing.T) {
	var payload UpdateRandevuDTO
	require.NoError(t, json.Unmarshal([]byte(`{"durum":"Onaylandı","notlar":"Görüşme teyit edildi"}`), &payload))

	values := payload.Columns()

	assert.Equal(t, map[string]interface{}{
		"durum":  "Onaylandı",
		"notlar": "Görüşme teyit edildi",
	}, values)
}

func TestUpdateRandevuDTO_BosStringBilincliBirDegerdir(t *testing.T) {
	var payload UpdateRandevuDTO
	require.NoError(t, json.Unmarshal([]byte(`{"havale_birimi":""}`), &payload))

	values := payload.Columns()

	require.Contains(t, values, "havale_birimi")
	assert.Equal(t, "", values["havale_birimi"])
}

func TestUpdateRandevuDTO_GonderilmeyenAlanHaritadaYoktur(t *testing.T) {
	var payload UpdateRandevuDTO
	require.NoError(t, json.Unmarshal([]byte(`{"saat":"10:30"}`), &payload))

	values := payload.Columns()

	assert.Equal(t, "10:30", values["saat"])
	assert.NotContains(t, values, "tarih")
	assert.NotContains(t, values, "durum")
}

func TestUpdateRandevuDTO_KatilimciSayisiHaritayaGirer(t *testing.T) {
	var payload UpdateRandevuDTO
	require.NoError(t, json.Unmarshal([]byte(`{"katilimci_sayisi":4}`), &payload))

	values := payload.Columns()

	assert.Equal(t, 4, values["katilimci_sayisi"])
}

func TestCreateRandevuDTO_TumSutunlarHaritadadir(t *testing.T) {
	payload := CreateRandevuDTO{
		AdSoyad:         "Ali Yılmaz",
		Amac:            "Mahalle sorunları görüşmesi",
		Tarih:           "2026-09-01",
		Saat:            "09:30",
		KatilimciSayisi: 2,
	}

	values := payload.Columns()

	assert.Equal(t, "Ali Yılmaz", values["ad_soyad"])
	assert.Equal(t, "2026-09-01", values["tarih"])
	assert.Equal(t, 2, values["katilimci_sayisi"])
	// Boş alanlar da yazılır; create'te kısmi yama yoktur.
	assert.Contains(t, values, "kurum")
	assert.Contains(t, values, "durum")
}
