package submit_booking

import (
	"context"
)

// UseCase use case для приема заявки на пробное занятие
type UseCase struct {
	store        BookingStore
	notifier     Notifier
	options      Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	notifier Notifier,
	options Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		notifier:     notifier,
		options:      options,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case приема заявки.
// Возвращает ошибку только при невалидной форме: запись в хранилище best-effort.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и нормализация
	record, err := FormatRecord(req, uc.timeProvider.Now(), uc.options.Weekdays, uc.options.DisplayDateLayout)
	if err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка класса и времени по справочникам
	if err := validateOptions(record.Grade, record.TimeSlot, uc.options.Grades, uc.options.TimeSlots); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitBooking: student=%s, grade=%s, date=%s, time=%s",
		record.StudentName, record.Grade, record.DisplayDate, record.TimeSlot)

	// 3. Запись в хранилище (ошибки хранилища сюда не доходят)
	uc.store.Append(ctx, record)

	// 4. Подтверждение, только если родитель оставил email
	notified := false
	if record.HasEmail() {
		uc.notifier.Notify(ctx, record)
		notified = true
	}

	uc.logger.Info("SubmitBooking: booking accepted for student=%s, notified=%t", record.StudentName, notified)

	return &Response{
		Record:   record,
		Notified: notified,
	}, nil
}
