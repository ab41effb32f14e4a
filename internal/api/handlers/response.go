package handlers

import (
	"bytes"
	"net/http"
	"net/url"
)

// Коды ошибок, которые форма получает через ?error=
const (
	ErrorCodeMissingFields = "missing_fields"
	ErrorCodeInvalidOption = "invalid_option"
	ErrorCodeInternal      = "internal"
)

const msgInternalError = "внутренняя ошибка сервера"

// RespondText отправляет текстовый ответ
func RespondText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

// RespondHTML отправляет уже отрендеренную страницу
func RespondHTML(w http.ResponseWriter, status int, body *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = body.WriteTo(w)
}

// RespondInternalError отправляет ошибку 500
func RespondInternalError(w http.ResponseWriter) {
	RespondText(w, http.StatusInternalServerError, msgInternalError)
}

// RedirectWithError возвращает пользователя на форму с кодом ошибки
func RedirectWithError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, "/?error="+url.QueryEscape(code), http.StatusSeeOther)
}
