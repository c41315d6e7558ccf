package dto

type LoginDTO struct {
	Eposta string `json:"eposta" validate:"required,email"`
	Sifre  string `json:"sifre" validate:"required,min=6"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponseDTO struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         UserPublicDTO `json:"user"`
}

type UserPublicDTO struct {
	ID      uint64 `json:"id"`
	AdSoyad string `json:"ad_soyad"`
	Eposta  string `json:"eposta"`
	Rol     string `json:"rol"`
}
