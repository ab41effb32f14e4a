package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// Имена страниц
const (
	PageForm         = "index.html"
	PageConfirmation = "confirmation.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FormPage данные страницы с формой
type FormPage struct {
	Center    domain.Center
	Grades    []string
	TimeSlots []string
	Dates     []domain.AvailableDate
	Error     string // сообщение после неудачной отправки
}

// ConfirmationPage данные страницы подтверждения
type ConfirmationPage struct {
	Center      domain.Center
	StudentName string
	Grade       string
	BookingDate string // дата в формате для показа
	TimeSlot    string
	Email       string // пусто, если email не указан
}

// Renderer рендерит встроенные html шаблоны
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer разбирает все страницы вместе с layout.html
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageForm, PageConfirmation} {
		tpl, err := template.New("layout.html").ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = tpl
	}

	return r, nil
}

// Render пишет страницу в w
func (r *Renderer) Render(w io.Writer, page string, data interface{}) error {
	tpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return tpl.ExecuteTemplate(w, "layout.html", data)
}
