package submit_booking

import "errors"

var (
	// ErrMissingRequiredField возвращается, когда обязательное поле формы пустое
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnknownOption возвращается, когда класс или время не входят в настроенные варианты
	ErrUnknownOption = errors.New("unknown form option")
)
