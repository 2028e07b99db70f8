package services

import "github.com/doctors-portal/api/internal/models"

// AvailableSlots computes which slots of each service are still free on the
// date the bookings were loaded for. A service's result keeps the declared
// slot order and drops every slot that appears in at least one booking for
// that treatment; a slot booked once and a slot booked twice are equally
// gone. The returned catalog is a fresh copy, the inputs are not mutated.
func AvailableSlots(catalog []models.Service, bookings []models.Booking) []models.Service {
	bookedSlots := make(map[string]map[string]bool)
	for _, b := range bookings {
		if bookedSlots[b.Treatment] == nil {
			bookedSlots[b.Treatment] = make(map[string]bool)
		}
		bookedSlots[b.Treatment][b.Slot] = true
	}

	available := make([]models.Service, len(catalog))
	for i, service := range catalog {
		booked := bookedSlots[service.Name]
		free := make([]string, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if !booked[slot] {
				free = append(free, slot)
			}
		}
		service.Slots = free
		available[i] = service
	}
	return available
}
