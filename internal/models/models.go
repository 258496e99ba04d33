package models

import "golang.org/x/crypto/bcrypt"

// Seller — таблица sellers. ID — uuid-строка, генерируется при регистрации
// и больше не меняется.
type Seller struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// Product — таблица products. Владелец один на всё время жизни записи.
type Product struct {
	ID          string  `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"type:text"`
	Category    string  `gorm:"index"`
	PaymentLink string  // внешняя ссылка оплаты, она же payload для QR
	SellerID    string  `gorm:"index;not null"`
}

// HashPassword превращает обычный пароль в безопасный хэш
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword проверяет пароль на совпадение с хэшем
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
