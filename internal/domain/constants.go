package domain

// Availability window
const (
	MaxAvailableDates     = 7  // entries shown in the form
	AvailabilityScanDays  = 14 // calendar days examined to collect them
	DefaultWorksheetRows  = 1000
	DefaultWorksheetCols  = 10
	DefaultSheetsTimeoutS = 15
)

// Time format constants
const (
	DateFormat      = "2006-01-02"          // YYYY-MM-DD, form value
	TimestampFormat = "2006-01-02 15:04:05" // submission time in the sheet

	DefaultDisplayDateLayout = "2006年01月02日"
	DefaultDateLabelLayout   = "01月02日"
)

// DefaultSheetHeaders header row written when the worksheet is created
var DefaultSheetHeaders = []string{
	"提交時間",
	"學生姓名",
	"年級",
	"聯絡電話",
	"電郵地址",
	"預約日期",
	"預約時段",
	"狀態",
}
