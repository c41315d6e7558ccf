package entities

import "time"

type User struct {
	ID        uint64    `json:"id"`
	AdSoyad   string    `json:"ad_soyad"`
	Eposta    string    `json:"eposta"`
	SifreHash string    `json:"-"`
	Rol       string    `json:"rol"`
	Aktif     bool      `json:"aktif"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
