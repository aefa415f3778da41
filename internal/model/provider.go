package model

type Provider struct {
	ID              string  `json:"id"`
	ServiceID       string  `json:"service_id"`
	Name            string  `json:"name"`
	Rating          float64 `json:"rating"`
	ExperienceYears int     `json:"experience_years"`
	Location        string  `json:"location"`
	ImageURL        string  `json:"image_url"`
}
