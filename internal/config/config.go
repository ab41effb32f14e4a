package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// Поддерживаемые хранилища заявок
const (
	BackendSheets     = "sheets"
	BackendAppsScript = "apps_script"
)

// Config конфигурация сервиса. После Load не изменяется.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Center  CenterConfig  `toml:"center"`
	Booking BookingConfig `toml:"booking"`
	Sheets  SheetsConfig  `toml:"sheets"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	Host            string `toml:"host"`
	HTTPPort        int    `toml:"http_port"`
	Debug           bool   `toml:"debug"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

// Addr адрес для ListenAndServe
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.HTTPPort)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CenterConfig контактные данные учебного центра (показываются на страницах и в письме)
type CenterConfig struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
	Phone   string `toml:"phone"`
	Email   string `toml:"email"`
}

// Domain конвертирует в доменную модель
func (c CenterConfig) Domain() domain.Center {
	return domain.Center{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}

// BookingConfig варианты формы и форматы дат
type BookingConfig struct {
	Grades            []string          `toml:"grades"`
	TimeSlots         []string          `toml:"time_slots"`
	WeekdayNames      map[string]string `toml:"weekday_names"` // "monday" -> "星期一"
	DisplayDateLayout string            `toml:"display_date_layout"`
	DateLabelLayout   string            `toml:"date_label_layout"`

	weekdays domain.WeekdayNames
}

// Weekdays возвращает справочник названий дней недели (он же набор рабочих дней)
func (b BookingConfig) Weekdays() domain.WeekdayNames {
	return b.weekdays
}

// SheetsConfig настройки хранилища заявок
type SheetsConfig struct {
	Backend         string   `toml:"backend"` // sheets | apps_script
	CredentialsPath string   `toml:"credentials_path"`
	SpreadsheetName string   `toml:"spreadsheet_name"`
	WorksheetName   string   `toml:"worksheet_name"`
	Headers         []string `toml:"headers"`
	Rows            int64    `toml:"rows"`
	Cols            int64    `toml:"cols"`
	Timeout         int      `toml:"timeout"` // секунды на connect + append
	AppsScriptURL   string   `toml:"apps_script_url"`
}

// TimeoutDuration таймаут операции с хранилищем
func (s SheetsConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

var weekdayKeys = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load загружает конфигурацию из TOML файла.
// Затем подхватывает .env рядом с файлом (если есть) и переменные окружения.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GOOGLE_CREDENTIALS_PATH"); v != "" {
		c.Sheets.CredentialsPath = v
	}
	if v := os.Getenv("APPS_SCRIPT_URL"); v != "" {
		c.Sheets.AppsScriptURL = v
	}
	if v := os.Getenv("HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEBUG %q: %w", v, err)
		}
		c.Server.Debug = debug
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 5000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Server.Debug {
		c.Logs.Level = "debug"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "trial-booking"
	}

	if len(c.Booking.WeekdayNames) == 0 {
		c.Booking.WeekdayNames = map[string]string{
			"monday":    "星期一",
			"tuesday":   "星期二",
			"wednesday": "星期三",
			"thursday":  "星期四",
			"friday":    "星期五",
		}
	}
	if c.Booking.DisplayDateLayout == "" {
		c.Booking.DisplayDateLayout = domain.DefaultDisplayDateLayout
	}
	if c.Booking.DateLabelLayout == "" {
		c.Booking.DateLabelLayout = domain.DefaultDateLabelLayout
	}

	if c.Sheets.Backend == "" {
		c.Sheets.Backend = BackendSheets
	}
	if c.Sheets.CredentialsPath == "" {
		c.Sheets.CredentialsPath = "credentials.json"
	}
	if len(c.Sheets.Headers) == 0 {
		c.Sheets.Headers = append([]string(nil), domain.DefaultSheetHeaders...)
	}
	if c.Sheets.Rows == 0 {
		c.Sheets.Rows = domain.DefaultWorksheetRows
	}
	if c.Sheets.Cols == 0 {
		c.Sheets.Cols = domain.DefaultWorksheetCols
	}
	if c.Sheets.Timeout == 0 {
		c.Sheets.Timeout = domain.DefaultSheetsTimeoutS
	}
}

func (c *Config) validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Center.Name == "" {
		errs = append(errs, errors.New("center.name is required"))
	}
	if len(c.Booking.Grades) == 0 {
		errs = append(errs, errors.New("booking.grades must not be empty"))
	}
	if len(c.Booking.TimeSlots) == 0 {
		errs = append(errs, errors.New("booking.time_slots must not be empty"))
	}

	weekdays := make(domain.WeekdayNames, len(c.Booking.WeekdayNames))
	for key, name := range c.Booking.WeekdayNames {
		day, ok := weekdayKeys[strings.ToLower(key)]
		if !ok {
			errs = append(errs, fmt.Errorf("booking.weekday_names: unknown weekday %q", key))
			continue
		}
		weekdays[day] = name
	}
	c.Booking.weekdays = weekdays

	switch c.Sheets.Backend {
	case BackendSheets:
		if c.Sheets.SpreadsheetName == "" || c.Sheets.WorksheetName == "" {
			errs = append(errs, errors.New("sheets.spreadsheet_name and sheets.worksheet_name are required"))
		}
	case BackendAppsScript:
	default:
		errs = append(errs, fmt.Errorf("sheets.backend: unknown backend %q", c.Sheets.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
