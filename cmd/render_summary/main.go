// Превью карточки со счётчиками записей: пишет summary.png в текущую папку
package main

import (
	"log"
	"os"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/service"
)

func main() {
	now := time.Now()
	statuses := []model.BookingStatus{
		model.BookingStatusPending,
		model.BookingStatusPending,
		model.BookingStatusConfirmed,
		model.BookingStatusCompleted,
		model.BookingStatusCompleted,
		model.BookingStatusCompleted,
		model.BookingStatusCancelled,
	}

	bookings := make([]model.BookingDetails, 0, len(statuses))
	for i, st := range statuses {
		bookings = append(bookings, model.BookingDetails{
			Booking: model.Booking{
				ID:          string(rune('a' + i)),
				ScheduledAt: now.AddDate(0, 0, i),
				Status:      st,
			},
			Service: model.ServiceSummary{Name: "Plumbing", Icon: model.IconDroplets},
		})
	}

	imageData, err := common.RenderSummaryCard(service.LoadInitial(bookings))
	if err != nil {
		log.Fatalf("Failed to render summary card: %v", err)
	}

	if err := os.WriteFile("summary.png", imageData, 0o644); err != nil {
		log.Fatalf("Failed to write summary.png: %v", err)
	}
	log.Printf("summary.png written, %d bytes", len(imageData))
}
