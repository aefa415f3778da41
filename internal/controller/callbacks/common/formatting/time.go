package formatting

import (
	"fmt"
	"time"
)

// FormatDateTime форматирует дату и время записи
func FormatDateTime(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006 at 15:04")
}

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006")
}

// FormatDayButton - короткая подпись дня для клавиатуры выбора даты
func FormatDayButton(t time.Time) string {
	return t.Format("Mon 02 Jan")
}

// FormatHour - подпись часа для клавиатуры выбора времени
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// FormatExperience - "12 years experience"
func FormatExperience(years int) string {
	return fmt.Sprintf("%d %s experience", years, Pluralize(years, "year", "years"))
}
