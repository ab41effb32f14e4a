package appsscript

import "errors"

var (
	// ErrNotConfigured возвращается, когда URL скрипта не задан (режим симуляции)
	ErrNotConfigured = errors.New("appsscript client: web app url is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appsscript client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от скрипта
	ErrInvalidResponse = errors.New("appsscript client: invalid response")

	// ErrRejected возвращается, когда скрипт ответил status=error
	ErrRejected = errors.New("appsscript client: booking rejected by script")
)
