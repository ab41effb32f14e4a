package show_form

import (
	"github.com/m04kA/SMC-TrialBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// FormOptions справочники формы
type FormOptions struct {
	Center    domain.Center
	Grades    []string
	TimeSlots []string
}

var errorMessages = map[string]string{
	handlers.ErrorCodeMissingFields: "請填寫所有必填欄位",
	handlers.ErrorCodeInvalidOption: "請從選項中選擇年級和預約時段",
	handlers.ErrorCodeInternal:      "提交預約時發生錯誤，請稍後再試",
}

// errorMessage возвращает текст для кода ошибки, неизвестные коды игнорируются
func errorMessage(code string) string {
	return errorMessages[code]
}
