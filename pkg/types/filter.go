package types

// Filter, liste uçlarının query string'inden çözülen ortak parametre kümesidir.
// Örnek: /api/randevular?search=Ahmet&sort[tarih]=desc&filter[durum]=Bekliyor&page=2&limit=20
type Filter struct {
	Search         string                 `json:"search,omitempty"`
	Sort           map[string]string      `json:"sort,omitempty"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
	Limit          int                    `json:"limit"`
	Offset         int                    `json:"offset"`
	Page           int                    `json:"page"`
	WithPagination bool                   `json:"with_pagination"`
}

// Pagination, liste cevaplarındaki sayfalama meta bilgisidir.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}
