package get_available_dates

import (
	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// UseCase use case для получения дат, доступных для пробного занятия
type UseCase struct {
	weekdays     domain.WeekdayNames
	labelLayout  string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(weekdays domain.WeekdayNames, labelLayout string, logger Logger) *UseCase {
	return &UseCase{
		weekdays:     weekdays,
		labelLayout:  labelLayout,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case. Ошибок не бывает: результат зависит только от текущего времени.
func (uc *UseCase) Execute() *Response {
	now := uc.timeProvider.Now()

	dates := GenerateAvailableDates(now, uc.weekdays, uc.labelLayout)

	uc.logger.Debug("GetAvailableDates: generated %d dates from %s", len(dates), now.Format(domain.DateFormat))

	return &Response{
		Reference: now,
		Dates:     dates,
	}
}
