package common

import "time"

// Окно записи: ближайшие 14 дней, выезд мастера с 08:00 до 18:00 с шагом в час
const (
	BookingWindowDays = 14
	FirstHour         = 8
	LastHour          = 18
)

// StartOfDay - полночь дня t в его часовом поясе
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SlotTime - начало часового слота hour в день day
func SlotTime(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

// AvailableHours возвращает часы дня, которые ещё не наступили к now
func AvailableHours(day, now time.Time) []int {
	day = StartOfDay(day.In(now.Location()))

	var hours []int
	for h := FirstHour; h <= LastHour; h++ {
		if SlotTime(day, h).After(now) {
			hours = append(hours, h)
		}
	}
	return hours
}

// AvailableDays возвращает дни окна записи, в которых остался хотя бы один слот.
// Сегодняшний день пропускается, если все его слоты уже прошли.
func AvailableDays(now time.Time) []time.Time {
	today := StartOfDay(now)

	days := make([]time.Time, 0, BookingWindowDays)
	for i := 0; i < BookingWindowDays; i++ {
		day := today.AddDate(0, 0, i)
		if len(AvailableHours(day, now)) > 0 {
			days = append(days, day)
		}
	}
	return days
}

// IsBookableDay - день входит в окно записи и в нём есть свободные часы
func IsBookableDay(day, now time.Time) bool {
	day = StartOfDay(day.In(now.Location()))
	for _, d := range AvailableDays(now) {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

// IsBookableSlot - час входит в рабочие часы и ещё не наступил
func IsBookableSlot(day time.Time, hour int, now time.Time) bool {
	if hour < FirstHour || hour > LastHour {
		return false
	}
	return IsBookableDay(day, now) && SlotTime(StartOfDay(day.In(now.Location())), hour).After(now)
}
