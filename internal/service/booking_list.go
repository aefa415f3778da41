package service

import "github.com/Freeeeeet/repair_bot/internal/model"

// Summary - счётчики для шапки списка записей
type Summary struct {
	Active int
	Total  int
}

// BookingList - закэшированный у клиента список записей.
// Значение неизменяемое: каждая операция возвращает новый список,
// поэтому его можно держать в состоянии сессии и передавать по значению.
type BookingList struct {
	items []model.BookingDetails
}

// LoadInitial заполняет список из снимка хранилища.
// Снимок уже отсортирован по created_at DESC, порядок не меняется.
func LoadInitial(bookings []model.BookingDetails) BookingList {
	items := make([]model.BookingDetails, len(bookings))
	copy(items, bookings)
	return BookingList{items: items}
}

// Items возвращает копию элементов
func (l BookingList) Items() []model.BookingDetails {
	items := make([]model.BookingDetails, len(l.items))
	copy(items, l.items)
	return items
}

func (l BookingList) Len() int {
	return len(l.items)
}

// Find ищет запись по id
func (l BookingList) Find(id string) (model.BookingDetails, bool) {
	for _, b := range l.items {
		if b.ID == id {
			return b, true
		}
	}
	return model.BookingDetails{}, false
}

// Cancellable - показывать ли кнопку отмены для записи
func (l BookingList) Cancellable(id string) bool {
	b, ok := l.Find(id)
	return ok && b.Status.CanCancel()
}

// DeriveSummary считает активные (pending/confirmed) и все записи
func (l BookingList) DeriveSummary() Summary {
	return DeriveSummary(l.items)
}

// DeriveSummary - чистая функция над последовательностью записей
func DeriveSummary(bookings []model.BookingDetails) Summary {
	s := Summary{Total: len(bookings)}
	for _, b := range bookings {
		if b.Status.IsActive() {
			s.Active++
		}
	}
	return s
}

// ApplyCancellation возвращает копию списка, где у записи id статус cancelled.
// Остальные поля и порядок не меняются; неизвестный id - список без изменений.
func (l BookingList) ApplyCancellation(id string) BookingList {
	idx := -1
	for i, b := range l.items {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l
	}

	next := l.Items()
	next[idx].Status = model.BookingStatusCancelled
	return BookingList{items: next}
}

// Prepend добавляет только что созданную запись в начало:
// она самая свежая, так что порядок created_at DESC сохраняется.
func (l BookingList) Prepend(b model.BookingDetails) BookingList {
	next := make([]model.BookingDetails, 0, len(l.items)+1)
	next = append(next, b)
	next = append(next, l.items...)
	return BookingList{items: next}
}

// CountByStatus - количество записей по каждому статусу
func (l BookingList) CountByStatus() map[model.BookingStatus]int {
	counts := make(map[model.BookingStatus]int, 4)
	for _, b := range l.items {
		counts[b.Status]++
	}
	return counts
}
