package usecase

import (
	"fmt"
	"html/template"
	"time"

	billingentity "github.com/shandysiswandi/renttrack/internal/billing/entity"
	"github.com/shandysiswandi/renttrack/internal/pkg/duedate"
)

const dateLayout = "02 January 2006"

const emailLayout = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:24px auto;background-color:#ffffff;border-radius:8px;padding:32px;">
    <h2 style="margin-top:0;color:#1a1a2e;">{{.title}}</h2>
    {{.body}}
    <hr style="border:none;border-top:1px solid #e0e0e0;margin:24px 0;">
    <p style="color:#8a8a8a;font-size:12px;">Sent by {{.app_name}} on {{.sent_at}}.</p>
  </div>
</body>
</html>`

const paymentReminderBody = `
    <p>Your rent payment of <strong>{{.amount}}</strong> is due on
    <strong>{{.due_date}}</strong>, {{.days_until}} day(s) from now.</p>
    <p>Please make sure the transfer arrives on time.</p>`

const overdueReminderBody = `
    <p>Your rent payment of <strong>{{.amount}}</strong> was due on
    <strong>{{.due_date}}</strong> and is now <strong>{{.days_since}} day(s)
    overdue</strong>.</p>
    <p>Please settle the outstanding amount as soon as possible.</p>`

const monthlyBillBody = `
    <p>Here is your bill for <strong>{{.period}}</strong>.</p>
    <table style="width:100%;border-collapse:collapse;">
      <tr><td style="padding:6px 0;">Rent</td><td style="text-align:right;">{{.rent}}</td></tr>
      <tr><td style="padding:6px 0;">Electricity ({{.electricity_usage}} kWh)</td><td style="text-align:right;">{{.electricity_cost}}</td></tr>
      <tr><td style="padding:6px 0;">Cold water ({{.cold_water_usage}} m3)</td><td style="text-align:right;">{{.cold_water_cost}}</td></tr>
      <tr><td style="padding:6px 0;">Hot water ({{.hot_water_usage}} m3)</td><td style="text-align:right;">{{.hot_water_cost}}</td></tr>
      <tr><td style="padding:6px 0;border-top:1px solid #e0e0e0;"><strong>Total</strong></td>
        <td style="text-align:right;border-top:1px solid #e0e0e0;"><strong>{{.total}}</strong></td></tr>
    </table>`

const systemNotificationBody = `
    <p>{{.message}}</p>
    {{if .details}}<p style="color:#5a5a5a;">{{.details}}</p>{{end}}`

const testMessageBody = `
    <p>This is a test message confirming that the email transport is
    configured correctly.</p>`

func (s *Usecase) baseTemplateData(title string) map[string]any {
	return map[string]any{
		"title":    title,
		"app_name": s.cfg.GetString("app.name"),
		"sent_at":  s.clock.Now().Format(dateLayout),
	}
}

// renderEmail renders the shared layout with the given inner body template.
func (s *Usecase) renderEmail(name, body string, data map[string]any) (string, error) {
	inner, err := s.renderTemplate(name, body, data)
	if err != nil {
		return "", err
	}

	data["body"] = template.HTML(inner) //nolint:gosec // rendered from trusted templates
	return s.renderTemplate("layout", emailLayout, data)
}

func (s *Usecase) renderPaymentReminder(settings billingentity.Settings, today time.Time) (string, string, error) {
	due := duedate.DueDateFrom(today, settings.PaymentDay)

	data := s.baseTemplateData("Rent payment reminder")
	data["amount"] = formatAmount(settings.MonthlyRent)
	data["due_date"] = due.Format(dateLayout)
	data["days_until"] = duedate.DaysUntil(today, settings.PaymentDay)

	body, err := s.renderEmail("payment_reminder", paymentReminderBody, data)
	subject := "Rent payment reminder: due " + due.Format(dateLayout)
	return subject, body, err
}

func (s *Usecase) renderOverdueReminder(settings billingentity.Settings, today time.Time) (string, string, error) {
	due := duedate.LastDueDateFrom(today, settings.PaymentDay)

	data := s.baseTemplateData("Rent payment overdue")
	data["amount"] = formatAmount(settings.MonthlyRent)
	data["due_date"] = due.Format(dateLayout)
	data["days_since"] = duedate.DaysSince(today, settings.PaymentDay)

	body, err := s.renderEmail("overdue_reminder", overdueReminderBody, data)
	subject := "Rent payment overdue: was due " + due.Format(dateLayout)
	return subject, body, err
}

func (s *Usecase) renderMonthlyBill(settings billingentity.Settings, rec billingentity.Record) (string, string, error) {
	period := formatPeriod(rec.YearMonth)

	data := s.baseTemplateData("Monthly bill")
	data["period"] = period
	data["rent"] = formatAmount(settings.MonthlyRent)
	data["electricity_usage"] = formatAmount(rec.ElectricityUsage)
	data["electricity_cost"] = formatAmount(rec.ElectricityCost)
	data["cold_water_usage"] = formatAmount(rec.ColdWaterUsage)
	data["cold_water_cost"] = formatAmount(rec.ColdWaterCost)
	data["hot_water_usage"] = formatAmount(rec.HotWaterUsage)
	data["hot_water_cost"] = formatAmount(rec.HotWaterCost)
	data["total"] = formatAmount(rec.TotalAmount)

	body, err := s.renderEmail("monthly_bill", monthlyBillBody, data)
	subject := "Monthly bill for " + period
	return subject, body, err
}

func (s *Usecase) renderSystemNotification(message, details string) (string, string, error) {
	data := s.baseTemplateData("System notification")
	data["message"] = message
	data["details"] = details

	body, err := s.renderEmail("system_notification", systemNotificationBody, data)
	return "System notification", body, err
}

func (s *Usecase) renderTestMessage() (string, string, error) {
	data := s.baseTemplateData("Test message")

	body, err := s.renderEmail("test_message", testMessageBody, data)
	return "Test message from " + s.cfg.GetString("app.name"), body, err
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// formatPeriod turns a "YYYY-MM" key into a human month label; the raw key is
// kept as a fallback for malformed values.
func formatPeriod(yearMonth string) string {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return t.Format("January 2006")
}
