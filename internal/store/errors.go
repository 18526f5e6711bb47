package store

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation - отсутствует обязательное поле или число голосов не разбирается
	ErrValidation = errors.New("validation error")
	// ErrConflict - email уже занят другим пользователем
	ErrConflict = errors.New("conflict error")
	// ErrAuth - неверная пара email/пароль
	ErrAuth = errors.New("auth error")
	// ErrSelfDelete - попытка удалить пользователя активной сессии
	ErrSelfDelete = errors.New("self delete error")
	// ErrNotFound возвращается Storage, если ключ ещё не записан
	ErrNotFound = errors.New("key not found")
)

// Result - единый ответ операций хранилища
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func succeed(message string) Result {
	return Result{Success: true, Message: message}
}

func fail(kind error, message string) Result {
	return Result{
		Success: false,
		Message: message,
		Err:     fmt.Errorf("%w: %s", kind, message),
	}
}

// Is сообщает, завершилась ли операция ошибкой данного вида
func (r Result) Is(kind error) bool {
	return errors.Is(r.Err, kind)
}
