package get_available_dates

import (
	"time"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// Response модель ответа со списком дат для формы
type Response struct {
	Reference time.Time              // Момент, от которого считались даты
	Dates     []domain.AvailableDate // Ближайшие рабочие дни, по возрастанию
}
