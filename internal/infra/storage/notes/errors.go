package notes

import "errors"

var (
	// ErrNotesNotFound возвращается, когда заметки для профессионала еще не сохранялись
	ErrNotesNotFound = errors.New("notes.repository: notes not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("notes.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("notes.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("notes.repository: failed to scan row")
)
