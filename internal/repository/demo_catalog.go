package repository

import (
	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
)

// Демо-каталог для STORE_DRIVER=memory, те же данные что в миграции 00002
var (
	demoServices = []store.Record{
		{"id": "a0b1c2d3-0000-4000-8000-000000000001", "name": "Plumbing", "description": "Leaks, clogged drains, fixture installs and water heater repair.", "icon": "Droplets", "base_price": 7500},
		{"id": "a0b1c2d3-0000-4000-8000-000000000002", "name": "Electrical", "description": "Outlets, lighting, panel upgrades and wiring fixes.", "icon": "Zap", "base_price": 9000},
		{"id": "a0b1c2d3-0000-4000-8000-000000000003", "name": "Painting", "description": "Interior and exterior painting, touch-ups and wall prep.", "icon": "Paintbrush", "base_price": 6000},
		{"id": "a0b1c2d3-0000-4000-8000-000000000004", "name": "Carpentry", "description": "Doors, shelving, trim work and furniture repair.", "icon": "Hammer", "base_price": 6500},
		{"id": "a0b1c2d3-0000-4000-8000-000000000005", "name": "HVAC", "description": "Heating and cooling maintenance, thermostat installs.", "icon": "Thermometer", "base_price": 11000},
		{"id": "a0b1c2d3-0000-4000-8000-000000000006", "name": "Cleaning", "description": "Deep cleaning after renovation or moving out.", "icon": "Sparkles", "base_price": 4000},
	}

	demoProviders = []store.Record{
		{"id": "b0c1d2e3-0000-4000-8000-000000000001", "service_id": "a0b1c2d3-0000-4000-8000-000000000001", "name": "Mike Turner", "rating": 4.8, "experience_years": 12, "location": "Downtown", "image_url": "https://images.example.com/providers/mike.jpg"},
		{"id": "b0c1d2e3-0000-4000-8000-000000000002", "service_id": "a0b1c2d3-0000-4000-8000-000000000001", "name": "Sara Lopez", "rating": 4.6, "experience_years": 7, "location": "Northside", "image_url": "https://images.example.com/providers/sara.jpg"},
		{"id": "b0c1d2e3-0000-4000-8000-000000000003", "service_id": "a0b1c2d3-0000-4000-8000-000000000002", "name": "Dan Brooks", "rating": 4.9, "experience_years": 15, "location": "Eastgate", "image_url": "https://images.example.com/providers/dan.jpg"},
		{"id": "b0c1d2e3-0000-4000-8000-000000000004", "service_id": "a0b1c2d3-0000-4000-8000-000000000003", "name": "Priya Shah", "rating": 4.7, "experience_years": 6, "location": "Westfield", "image_url": "https://images.example.com/providers/priya.jpg"},
		{"id": "b0c1d2e3-0000-4000-8000-000000000005", "service_id": "a0b1c2d3-0000-4000-8000-000000000004", "name": "Tom Walsh", "rating": 4.5, "experience_years": 20, "location": "Old Town", "image_url": "https://images.example.com/providers/tom.jpg"},
		{"id": "b0c1d2e3-0000-4000-8000-000000000006", "service_id": "a0b1c2d3-0000-4000-8000-000000000005", "name": "Nina Park", "rating": 4.8, "experience_years": 9, "location": "Riverside", "image_url": "https://images.example.com/providers/nina.jpg"},
		{"id": "b0c1d2e3-0000-4000-8000-000000000007", "service_id": "a0b1c2d3-0000-4000-8000-000000000006", "name": "Leo Grant", "rating": 4.4, "experience_years": 4, "location": "Downtown", "image_url": "https://images.example.com/providers/leo.jpg"},
	}
)

// NewDemoMemoryStore создаёт хранилище в памяти с демо-каталогом и
// теми же ограничениями уникальности, что и схема Postgres
func NewDemoMemoryStore(clk clock.Clock) *store.MemoryStore {
	s := store.NewMemoryStore(clk).WithUnique(TableBookings, "idempotency_key")
	s.Seed(TableServices, demoServices...)
	s.Seed(TableProviders, demoProviders...)
	return s
}
