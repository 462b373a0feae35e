// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// Hasher инкапсулирует стоимость bcrypt и создает одноразовый хэш пароля при регистрации.
// Несовпадение пароля при проверке — это штатный результат (ErrMismatch), а не сбой сервиса.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch возвращается из Compare, если пароль не соответствует хэшу.
var ErrMismatch = errors.New("password mismatch")

// Hasher хэширует пароли с настраиваемой стоимостью bcrypt.
type Hasher struct {
	cost int
}

// New создает Hasher. При неположительной стоимости используется bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash принимает пароль пользователя и возвращает его bcrypt‑хэш.
//
// Используется для безопасного хранения паролей в базе данных.
// Ошибка возможна только при внутреннем сбое bcrypt.
func (h *Hasher) Hash(secret string) (string, error) {
	const op = "password.Hash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// Compare сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil при совпадении, ErrMismatch при несовпадении
// и обёрнутую ошибку при повреждённом хэше.
func (h *Hasher) Compare(originalHash, externalPassword string) error {
	const op = "password.Compare"
	err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("%s: %w", op, err)
}
