package notes

import "errors"

var (
	// ErrNotesTooLong возвращается, когда текст заметок превышает допустимый размер
	ErrNotesTooLong = errors.New("notes text is too long")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notes service: internal error")
)
