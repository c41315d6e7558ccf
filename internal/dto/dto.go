package dto

import (
	"github.com/aarondl/null/v8"
)

// ColumnMapper, create/update DTO'larının repository katmanına geçireceği
// sütun haritasını üretir. Update DTO'larında yalnızca gönderilen (Valid)
// alanlar haritaya girer.
type ColumnMapper interface {
	Columns() map[string]interface{}
}

func putString(values map[string]interface{}, column string, v null.String) {
	if v.Valid {
		values[column] = v.String
	}
}

func putInt(values map[string]interface{}, column string, v null.Int) {
	if v.Valid {
		values[column] = v.Int
	}
}

func putBool(values map[string]interface{}, column string, v null.Bool) {
	if v.Valid {
		values[column] = v.Bool
	}
}
