package submit_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

var workdays = domain.WeekdayNames{
	time.Monday:    "星期一",
	time.Tuesday:   "星期二",
	time.Wednesday: "星期三",
	time.Thursday:  "星期四",
	time.Friday:    "星期五",
}

var submittedAt = time.Date(2024, time.January, 10, 9, 30, 5, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		StudentName: "Amy",
		Grade:       "P1",
		Phone:       "12345678",
		Email:       "",
		BookingDate: "2024-01-15",
		TimeSlot:    "10:00",
	}
}

func TestFormatRecord_EmptyStudentName(t *testing.T) {
	req := validRequest()
	req.StudentName = ""

	record, err := FormatRecord(req, submittedAt, workdays, domain.DefaultDisplayDateLayout)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestFormatRecord_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"whitespace name", func(r *Request) { r.StudentName = "   " }},
		{"grade", func(r *Request) { r.Grade = "" }},
		{"phone", func(r *Request) { r.Phone = "\t" }},
		{"booking date", func(r *Request) { r.BookingDate = "" }},
		{"time slot", func(r *Request) { r.TimeSlot = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := FormatRecord(req, submittedAt, workdays, domain.DefaultDisplayDateLayout)

			assert.ErrorIs(t, err, ErrMissingRequiredField)
		})
	}
}

func TestFormatRecord_Success(t *testing.T) {
	record, err := FormatRecord(validRequest(), submittedAt, workdays, domain.DefaultDisplayDateLayout)
	require.NoError(t, err)

	assert.Equal(t, &domain.BookingRecord{
		SubmittedAt: "2024-01-10 09:30:05",
		StudentName: "Amy",
		Grade:       "P1",
		Phone:       "12345678",
		Email:       domain.EmailNotProvided,
		BookingDate: "2024-01-15",
		DisplayDate: "2024年01月15日 (星期一)",
		TimeSlot:    "10:00",
		Status:      domain.StatusPendingConfirmation,
	}, record)
	assert.False(t, record.HasEmail())
}

func TestFormatRecord_DashedLayout(t *testing.T) {
	record, err := FormatRecord(validRequest(), submittedAt, domain.WeekdayNames{time.Monday: "Monday"}, domain.DateFormat)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15 (Monday)", record.DisplayDate)
}

func TestFormatRecord_TrimsFields(t *testing.T) {
	req := &Request{
		StudentName: "  Amy Chan ",
		Grade:       " P1",
		Phone:       " 9123 4567 ",
		Email:       " amy@example.com ",
		BookingDate: "2024-01-16 ",
		TimeSlot:    "10:00 ",
	}

	record, err := FormatRecord(req, submittedAt, workdays, domain.DefaultDisplayDateLayout)
	require.NoError(t, err)

	assert.Equal(t, "Amy Chan", record.StudentName)
	assert.Equal(t, "P1", record.Grade)
	assert.Equal(t, "9123 4567", record.Phone)
	assert.Equal(t, "amy@example.com", record.Email)
	assert.Equal(t, "2024年01月16日 (星期二)", record.DisplayDate)
	assert.True(t, record.HasEmail())
}

func TestFormatRecord_MalformedDateEchoed(t *testing.T) {
	req := validRequest()
	req.BookingDate = "not-a-date"

	record, err := FormatRecord(req, submittedAt, workdays, domain.DefaultDisplayDateLayout)
	require.NoError(t, err)

	assert.Equal(t, "not-a-date", record.DisplayDate)
}

func TestFormatRecord_NonBookableWeekday(t *testing.T) {
	req := validRequest()
	req.BookingDate = "2024-01-13" // суббота

	record, err := FormatRecord(req, submittedAt, workdays, domain.DefaultDisplayDateLayout)
	require.NoError(t, err)

	assert.Equal(t, "2024年01月13日 ()", record.DisplayDate)
}

func TestValidateOptions(t *testing.T) {
	grades := []string{"P1", "P2"}
	slots := []string{"10:00", "14:00"}

	assert.NoError(t, validateOptions("P1", "14:00", grades, slots))
	assert.ErrorIs(t, validateOptions("S6", "14:00", grades, slots), ErrUnknownOption)
	assert.ErrorIs(t, validateOptions("P1", "23:00", grades, slots), ErrUnknownOption)
	assert.NoError(t, validateOptions("anything", "any time", nil, nil))
}
