package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterFromQuery_Varsayilanlar(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.False(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
}

func TestParseFilterFromQuery_LimitUstSinirAsilamaz(t *testing.T) {
	query, err := url.ParseQuery("limit=500")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(query)
	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterFromQuery_GecersizLimitYokSayilir(t *testing.T) {
	query, err := url.ParseQuery("limit=abc")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(query)
	assert.Equal(t, DefaultLimit, filter.Limit)
}

func TestParseFilterFromQuery_PageOffseteCevrilir(t *testing.T) {
	query, err := url.ParseQuery("page=3&limit=20")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(query)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 40, filter.Offset)
}

func TestParseFilterFromQuery_OffsetVarsaPageYokSayilir(t *testing.T) {
	query, err := url.ParseQuery("offset=30&page=9&limit=10")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(query)
	assert.Equal(t, 30, filter.Offset)
	assert.Equal(t, 4, filter.Page)
}

func TestParseFilterFromQuery_SortVeFilterAyristirilir(t *testing.T) {
	query, err := url.ParseQuery("sort[tarih]=desc&sort[saat]=ASC&filter[durum]=Bekliyor&search=yılmaz")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(query)
	assert.Equal(t, "desc", filter.Sort["tarih"])
	assert.Equal(t, "asc", filter.Sort["saat"])
	assert.Equal(t, "Bekliyor", filter.Filter["durum"])
	assert.Equal(t, "yılmaz", filter.Search)
}

func TestParseFilterFromQuery_GecersizSortYonuAtlanir(t *testing.T) {
	query, err := url.ParseQuery("sort[tarih]=yukari")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(query)
	assert.NotContains(t, filter.Sort, "tarih")
}

func TestParseFilterFromQuery_TekrarlananFilterVirgulleBirlesir(t *testing.T) {
	query, err := url.ParseQuery("filter[durum]=Bekliyor&filter[durum]=Onaylandı")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(query)
	assert.Equal(t, "Bekliyor,Onaylandı", filter.Filter["durum"])
}

func TestParseFilterFromQuery_WithPagination(t *testing.T) {
	query, err := url.ParseQuery("withPagination=true")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(query)
	assert.True(t, filter.WithPagination)
}
