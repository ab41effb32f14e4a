package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
	"github.com/m04kA/SMC-TrialBooking/pkg/metrics"
)

// ChannelLog канал доставки: сообщение только пишется в лог
const ChannelLog = "log"

// Service builds confirmation messages and emits them to the log.
// Real delivery is not wired.
type Service struct {
	center  domain.Center
	metrics Metrics
	logger  Logger
}

// NewService создает сервис уведомлений
func NewService(center domain.Center, m Metrics, logger Logger) *Service {
	if m == nil {
		m = (*metrics.Metrics)(nil)
	}
	return &Service{
		center:  center,
		metrics: m,
		logger:  logger,
	}
}

// Notify emits the confirmation for a record. Records without an email are ignored.
func (s *Service) Notify(ctx context.Context, record *domain.BookingRecord) {
	if !record.HasEmail() {
		return
	}

	msg := s.BuildMessage(record)
	s.logger.Info("Notify: confirmation email to=%s, subject=%q\n%s", msg.To, msg.Subject, msg.Body)
	s.metrics.ObserveNotification(ChannelLog)
}

// BuildMessage формирует письмо-подтверждение
func (s *Service) BuildMessage(record *domain.BookingRecord) *Message {
	var b strings.Builder

	fmt.Fprintf(&b, "親愛的家長您好：\n\n")
	fmt.Fprintf(&b, "感謝您為 %s 同學預約試堂！\n\n", record.StudentName)
	fmt.Fprintf(&b, "以下是您的預約詳情：\n")
	fmt.Fprintf(&b, "  學生姓名：%s\n", record.StudentName)
	fmt.Fprintf(&b, "  年級：%s\n", record.Grade)
	fmt.Fprintf(&b, "  預約日期：%s\n", record.DisplayDate)
	fmt.Fprintf(&b, "  預約時段：%s\n\n", record.TimeSlot)
	fmt.Fprintf(&b, "請於預約時間前10分鐘到達：\n")
	fmt.Fprintf(&b, "地址：%s\n", s.center.Address)
	fmt.Fprintf(&b, "電話：%s\n\n", s.center.Phone)
	fmt.Fprintf(&b, "如需更改或取消預約，請致電聯絡我們。\n\n")
	fmt.Fprintf(&b, "%s\n%s", s.center.Name, s.center.Email)

	return &Message{
		To:      record.Email,
		Subject: fmt.Sprintf("試堂預約確認 - %s", s.center.Name),
		Body:    b.String(),
	}
}
