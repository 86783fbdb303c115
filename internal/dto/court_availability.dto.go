package dto

type SlotAvailabilityDTO struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

type CourtAvailabilityDTO struct {
	ID    string                `json:"id"`
	Name  string                `json:"name"`
	Slots []SlotAvailabilityDTO `json:"slots"`
}
