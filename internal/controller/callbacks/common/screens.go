package common

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/repair_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

// BookingsPageSize - записей на одной странице списка
const BookingsPageSize = 5

// BuildCatalogScreen формирует экран каталога услуг
func BuildCatalogScreen(services []*model.Service) (string, *models.InlineKeyboardMarkup) {
	if len(services) == 0 {
		kb := keyboard.NewBuilder().Row(keyboard.MyBookingsButton()).Build()
		return "🛠 <b>Home repair services</b>\n\nNo services are available right now. Please check back later.", kb
	}

	var sb strings.Builder
	sb.WriteString("🛠 <b>Home repair services</b>\n\n")
	sb.WriteString("Pick a service to see the available providers:\n\n")

	kb := keyboard.NewBuilder()
	for _, svc := range services {
		icon := formatting.IconSymbol(svc.Icon)
		sb.WriteString(fmt.Sprintf("%s <b>%s</b> · from %s\n",
			icon, html.EscapeString(svc.Name), formatting.FormatPrice(svc.BasePrice)))
		kb.Row(keyboard.Button(icon+" "+svc.Name+" · "+formatting.FormatPriceShort(svc.BasePrice), ViewServiceData(svc.ID)))
	}
	kb.Row(keyboard.MyBookingsButton())

	return sb.String(), kb.Build()
}

// BuildServiceNotFoundScreen - услуга удалена или ссылка устарела
func BuildServiceNotFoundScreen() (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().Row(keyboard.BackToServicesButton()).Build()
	return "🔍 <b>Service not found</b>\n\nThis service is no longer available.", kb
}

// BuildServiceScreen формирует экран услуги со списком мастеров
func BuildServiceScreen(svc *model.Service, providers []*model.Provider) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s <b>%s</b>\n\n", formatting.IconSymbol(svc.Icon), html.EscapeString(svc.Name)))
	if svc.Description != "" {
		sb.WriteString(html.EscapeString(svc.Description) + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("💰 From %s\n\n", formatting.FormatPrice(svc.BasePrice)))

	kb := keyboard.NewBuilder()
	if len(providers) == 0 {
		sb.WriteString("No providers are available for this service yet.")
		kb.Row(keyboard.BackToServicesButton())
		return sb.String(), kb.Build()
	}

	sb.WriteString("<b>Providers</b>\n")
	for _, p := range providers {
		sb.WriteString(fmt.Sprintf("👷 %s · ⭐ %.1f · %s",
			html.EscapeString(p.Name), p.Rating, formatting.FormatExperience(p.ExperienceYears)))
		if p.Location != "" {
			sb.WriteString(" · 📍 " + html.EscapeString(p.Location))
		}
		sb.WriteString("\n")

		kb.Row(keyboard.Button(fmt.Sprintf("👷 %s ⭐ %.1f", p.Name, p.Rating), PickProviderData(p.ID)))
	}
	sb.WriteString("\nChoose a provider to book a visit:")
	kb.Row(keyboard.BackToServicesButton())

	return sb.String(), kb.Build()
}

// bookingHeader - что уже выбрано в диалоге записи
func bookingHeader(s state.Session) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s <b>%s</b>\n", formatting.IconSymbol(s.ServiceIcon), html.EscapeString(s.ServiceName)))
	if s.ProviderName != "" {
		sb.WriteString("👷 " + html.EscapeString(s.ProviderName) + "\n")
	}
	if !s.Draft.ScheduledAt.IsZero() {
		sb.WriteString("📅 " + formatting.FormatDateTime(s.Draft.ScheduledAt) + "\n")
	} else if !s.Day.IsZero() {
		sb.WriteString("📅 " + formatting.FormatDate(s.Day) + "\n")
	}
	return sb.String()
}

// BuildDatePickerScreen - выбор дня из окна записи
func BuildDatePickerScreen(s state.Session, now time.Time) (string, *models.InlineKeyboardMarkup) {
	days := AvailableDays(now)

	buttons := make([]models.InlineKeyboardButton, 0, len(days))
	for _, day := range days {
		buttons = append(buttons, keyboard.Button(formatting.FormatDayButton(day), PickDateData(day)))
	}

	kb := keyboard.NewBuilder().
		Grid(3, buttons...).
		Row(keyboard.BackButton(ViewServiceData(s.Draft.ServiceID)), keyboard.AbortBookingButton()).
		Build()

	return bookingHeader(s) + "\nStep 2 of 4: choose a day:", kb
}

// BuildTimePickerScreen - выбор часа в выбранный день
func BuildTimePickerScreen(s state.Session, now time.Time) (string, *models.InlineKeyboardMarkup) {
	hours := AvailableHours(s.Day, now)

	buttons := make([]models.InlineKeyboardButton, 0, len(hours))
	for _, h := range hours {
		buttons = append(buttons, keyboard.Button(formatting.FormatHour(h), PickTimeData(h)))
	}

	kb := keyboard.NewBuilder().
		Grid(4, buttons...).
		Row(keyboard.BackButton(BackToDates), keyboard.AbortBookingButton()).
		Build()

	return bookingHeader(s) + "\nStep 3 of 4: choose a time:", kb
}

// BuildAddressPrompt просит прислать адрес обычным сообщением
func BuildAddressPrompt(s state.Session) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().Row(keyboard.AbortBookingButton()).Build()
	return bookingHeader(s) + "\nStep 4 of 4: send the service address as a message.\n\n" +
		"For example: 12 Oak Street, apt 4", kb
}

// BuildConfirmScreen - итог перед отправкой заявки
func BuildConfirmScreen(s state.Session) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"📝 <b>Confirm your booking</b>\n\n"+
			"%s Service: %s\n"+
			"💰 From: %s\n"+
			"👷 Provider: %s\n"+
			"📅 When: %s\n"+
			"📍 Address: %s\n\n"+
			"Submit the request?",
		formatting.IconSymbol(s.ServiceIcon),
		html.EscapeString(s.ServiceName),
		formatting.FormatPrice(s.ServicePrice),
		html.EscapeString(s.ProviderName),
		formatDraftTime(s.Draft.ScheduledAt),
		html.EscapeString(s.Draft.Address),
	)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("✅ Submit request", SubmitBooking)).
		Row(keyboard.Button("✏️ Change address", EditAddress), keyboard.AbortBookingButton()).
		Build()

	return text, kb
}

func formatDraftTime(t time.Time) string {
	if t.IsZero() {
		return "not selected"
	}
	return formatting.FormatDateTime(t)
}

// BuildSuccessScreen - заявка создана, через пару секунд откроется список записей
func BuildSuccessScreen(booking *model.Booking, s state.Session, loc *time.Location) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"✅ <b>Booking requested!</b>\n\n"+
			"%s %s with %s\n"+
			"📅 %s\n"+
			"📍 %s\n"+
			"📊 Status: %s\n\n"+
			"The provider will confirm your visit. Opening your bookings…",
		formatting.IconSymbol(s.ServiceIcon),
		html.EscapeString(s.ServiceName),
		html.EscapeString(s.ProviderName),
		formatting.FormatDateTime(booking.ScheduledAt.In(loc)),
		html.EscapeString(booking.Address),
		formatting.FormatBookingStatus(booking.Status),
	)

	kb := keyboard.NewBuilder().Row(keyboard.MyBookingsButton()).Build()
	return text, kb
}

// BuildBookingsScreen формирует страницу списка записей с шапкой Active/Total.
// Кнопка отмены есть только у pending записей. Возвращает фактический номер страницы.
func BuildBookingsScreen(list service.BookingList, page int, loc *time.Location) (string, *models.InlineKeyboardMarkup, int) {
	if list.Len() == 0 {
		kb := keyboard.NewBuilder().Row(keyboard.BackToServicesButton()).Build()
		return "📋 <b>My Bookings</b>\n\nYou have no bookings yet.", kb, 0
	}

	summary := list.DeriveSummary()
	items := list.Items()
	start, end, current, pages := keyboard.PageBounds(len(items), BookingsPageSize, page)

	var sb strings.Builder
	sb.WriteString("📋 <b>My Bookings</b>\n\n")
	sb.WriteString(fmt.Sprintf("Active: %d · Total: %d\n", summary.Active, summary.Total))
	if pages > 1 {
		sb.WriteString(fmt.Sprintf("Page %d of %d · %d %s\n", current+1, pages, len(items), formatting.PluralizeBookings(len(items))))
	}
	sb.WriteString("\n")

	kb := keyboard.NewBuilder()
	for _, b := range items[start:end] {
		sb.WriteString(formatBookingEntry(b, loc))
		sb.WriteString("\n")

		if list.Cancellable(b.ID) {
			kb.Row(keyboard.Button(
				fmt.Sprintf("❌ Cancel %s · %s", b.Service.Name, formatting.FormatDayButton(b.ScheduledAt.In(loc))),
				CancelBookingData(b.ID),
			))
		}
	}

	kb.AddPagination(BookingsPage, current, pages)
	kb.Row(keyboard.Button("📊 Summary card", BookingsSummary), keyboard.BackToServicesButton())

	return sb.String(), kb.Build(), current
}

func formatBookingEntry(b model.BookingDetails, loc *time.Location) string {
	name := b.Service.Name
	if name == "" {
		name = "Service"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s <b>%s</b>\n", formatting.IconSymbol(b.Service.Icon), html.EscapeString(name)))
	if b.Provider.Name != "" {
		sb.WriteString("👷 " + html.EscapeString(b.Provider.Name) + "\n")
	}
	sb.WriteString("📅 " + formatting.FormatDateTime(b.ScheduledAt.In(loc)) + "\n")
	sb.WriteString("📍 " + html.EscapeString(b.Address) + "\n")
	sb.WriteString(formatting.FormatBookingStatus(b.Status) + "\n")
	return sb.String()
}

// CancelRefusalMessage - почему запись с этим статусом нельзя отменить
func CancelRefusalMessage(status model.BookingStatus) string {
	if status.IsTerminal() {
		return "ℹ️ This booking is already " + strings.ToLower(formatting.GetBookingStatusDisplay(status).Text)
	}
	return "ℹ️ Only pending bookings can be cancelled"
}
