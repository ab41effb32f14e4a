package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

const minimalConfig = `
[center]
name = "明德補習社"
address = "九龍旺角彌敦道1號"
phone = "2345 6789"
email = "info@example.com"

[booking]
grades = ["P1", "P2"]
time_slots = ["10:00", "14:00"]

[sheets]
spreadsheet_name = "試堂預約記錄"
worksheet_name = "預約記錄"
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GOOGLE_CREDENTIALS_PATH", "APPS_SCRIPT_URL", "HOST", "PORT", "DEBUG", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), minimalConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.HTTPPort)
	assert.Equal(t, ":5000", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, BackendSheets, cfg.Sheets.Backend)
	assert.Equal(t, "credentials.json", cfg.Sheets.CredentialsPath)
	assert.Equal(t, domain.DefaultSheetHeaders, cfg.Sheets.Headers)
	assert.Equal(t, int64(1000), cfg.Sheets.Rows)
	assert.Equal(t, int64(10), cfg.Sheets.Cols)
	assert.Equal(t, 15*time.Second, cfg.Sheets.TimeoutDuration())
	assert.Equal(t, domain.DefaultDisplayDateLayout, cfg.Booking.DisplayDateLayout)

	weekdays := cfg.Booking.Weekdays()
	assert.Len(t, weekdays, 5)
	assert.Equal(t, "星期一", weekdays.Name(time.Monday))
	assert.False(t, weekdays.IsBookable(time.Saturday))
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "true")
	t.Setenv("GOOGLE_CREDENTIALS_PATH", "/secrets/sa.json")
	path := writeConfig(t, t.TempDir(), minimalConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/secrets/sa.json", cfg.Sheets.CredentialsPath)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, minimalConfig)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GOOGLE_CREDENTIALS_PATH=from-dotenv.json\n"), 0o644))
	// godotenv.Load не перезаписывает уже выставленные переменные, поэтому убираем пустое значение
	require.NoError(t, os.Unsetenv("GOOGLE_CREDENTIALS_PATH"))
	t.Cleanup(func() { os.Unsetenv("GOOGLE_CREDENTIALS_PATH") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv.json", cfg.Sheets.CredentialsPath)
}

func TestLoad_CustomWeekdays(t *testing.T) {
	clearEnv(t)
	body := minimalConfig + `
[booking.weekday_names]
saturday = "Sat"
Sunday = "Sun"
`
	// booking table уже объявлен выше, поэтому подтаблицу добавляем отдельно
	path := writeConfig(t, t.TempDir(), body)

	cfg, err := Load(path)
	require.NoError(t, err)

	weekdays := cfg.Booking.Weekdays()
	assert.Equal(t, domain.WeekdayNames{time.Saturday: "Sat", time.Sunday: "Sun"}, weekdays)
}

func TestLoad_ValidationErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing grades",
			body: `
[center]
name = "x"
[booking]
time_slots = ["10:00"]
[sheets]
spreadsheet_name = "a"
worksheet_name = "b"
`,
		},
		{
			name: "unknown weekday",
			body: minimalConfig + `
[booking.weekday_names]
funday = "?"
`,
		},
		{
			name: "unknown backend",
			body: `
[center]
name = "x"
[booking]
grades = ["P1"]
time_slots = ["10:00"]
[sheets]
backend = "excel"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	path := writeConfig(t, t.TempDir(), minimalConfig)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
