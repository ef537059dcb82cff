// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher хеширует пароли пользователей и сверяет их с сохранёнными
// хешами. Открытый пароль нигде не сохраняется: в БД лежит только результат
// Hash.
type PasswordHasher interface {
	// Hash returns the bcrypt hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch returns
	// [ErrPasswordMismatch]; a malformed hash returns the bcrypt error.
	Compare(hash, password string) error
}
