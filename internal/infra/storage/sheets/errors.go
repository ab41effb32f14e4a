package sheets

import "errors"

var (
	// ErrCredentialsMissing возвращается, когда файла ключа нет (режим симуляции)
	ErrCredentialsMissing = errors.New("sheets.store: credentials file not found")

	// ErrAuth возвращается при ошибке аутентификации в Google API
	ErrAuth = errors.New("sheets.store: failed to authenticate")

	// ErrOpenSpreadsheet возвращается, когда не удалось найти или создать таблицу
	ErrOpenSpreadsheet = errors.New("sheets.store: failed to open spreadsheet")

	// ErrOpenWorksheet возвращается, когда не удалось найти или создать лист
	ErrOpenWorksheet = errors.New("sheets.store: failed to open worksheet")

	// ErrAppendRow возвращается при ошибке добавления строки
	ErrAppendRow = errors.New("sheets.store: failed to append row")
)
