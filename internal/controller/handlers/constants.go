package handlers

// Константы валидации адреса визита
const (
	AddressMinLength = 5
	AddressMaxLength = 300
)
