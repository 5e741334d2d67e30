package models

// ServiceType - тип экстренной службы.
type ServiceType string

const (
	ServiceHospital ServiceType = "hospital"
	ServicePolice   ServiceType = "police"
	ServiceFire     ServiceType = "fire"
)

// EmergencyService - ближайшая экстренная служба. Не сохраняется в бд,
// живет только в ответе на запрос.
type EmergencyService struct {
	Name      string      `json:"name"`
	Type      ServiceType `json:"type"`
	Address   string      `json:"address"`
	Distance  float64     `json:"distance"` // метры от точки запроса
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
}
