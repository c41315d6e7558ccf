package errors

import "fmt"

var (
	// Token ve oturum
	ErrInvalidSigningMethod = fmt.Errorf("geçersiz token imza yöntemi")
	ErrInvalidToken         = fmt.Errorf("geçersiz token")
	ErrTokenExpired         = fmt.Errorf("token süresi dolmuş")
	ErrTokenNotFound        = fmt.Errorf("token bulunamadı")
	ErrTokenIsNotRefresh    = fmt.Errorf("token bir refresh token değil")
	ErrTokenIsNotAccess     = fmt.Errorf("refresh token ile erişim yapılamaz")

	// Yetkilendirme
	ErrEmptyAuthHeader    = fmt.Errorf("yetkilendirme başlığı eksik")
	ErrInvalidAuthHeader  = fmt.Errorf("yetkilendirme başlığı hatalı")
	ErrInvalidCredentials = fmt.Errorf("e-posta veya şifre hatalı")
	ErrUnauthorized       = fmt.Errorf("oturum açılmamış")
	ErrForbidden          = fmt.Errorf("bu işlem için yetkiniz yok")
	ErrAccountLocked      = fmt.Errorf("çok fazla başarısız deneme, hesap geçici olarak kilitlendi")

	// Context
	ErrUserIDNotFoundInContext = fmt.Errorf("kullanıcı kimliği istek bağlamında bulunamadı")

	// Genel
	ErrNotFound   = fmt.Errorf("kayıt bulunamadı")
	ErrBadRequest = fmt.Errorf("geçersiz istek")

	// Randevu iş kuralları
	ErrRandevuCakismasi = fmt.Errorf("bu tarih ve saatte başka bir randevu mevcut")
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
