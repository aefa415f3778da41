package model

type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        IconTag `json:"icon"`
	BasePrice   int     `json:"base_price"` // в центах
}
