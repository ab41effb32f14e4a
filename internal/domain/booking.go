package domain

// BookingStatus represents the status written to the booking sheet
type BookingStatus string

const (
	// StatusPendingConfirmation is the only status this service ever writes;
	// staff change it by hand in the sheet.
	StatusPendingConfirmation BookingStatus = "待確認"
)

// EmailNotProvided is stored instead of an empty email, since the sheet has no null
const EmailNotProvided = "未提供"

// BookingRecord represents one normalized trial-class request as appended to the store
type BookingRecord struct {
	SubmittedAt string // "2006-01-02 15:04:05"
	StudentName string
	Grade       string
	Phone       string
	Email       string // EmailNotProvided when the parent left it blank
	BookingDate string // raw form value, "2006-01-02" when well-formed
	DisplayDate string // formatted date with weekday name, or the raw value if unparsable
	TimeSlot    string
	Status      BookingStatus
}

// HasEmail returns true if a real email address was supplied
func (r *BookingRecord) HasEmail() bool {
	return r.Email != "" && r.Email != EmailNotProvided
}

// Row returns the record fields in the fixed sheet column order:
// submitted at, student name, grade, phone, email, display date, time slot, status
func (r *BookingRecord) Row() []interface{} {
	return []interface{}{
		r.SubmittedAt,
		r.StudentName,
		r.Grade,
		r.Phone,
		r.Email,
		r.DisplayDate,
		r.TimeSlot,
		string(r.Status),
	}
}
