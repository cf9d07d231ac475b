package ledger

import "github.com/yourusername/dairy-ledger/models"

// Route is the delivery round for one slot on one day.
type Route struct {
	Slot      string            `json:"slot"`
	Total     int               `json:"total"`
	Delivered int               `json:"delivered"`
	Pending   []models.Customer `json:"pending"`
}

// BuildRoute selects the active customers expected in the given slot
// and splits them into done and pending. A customer counts as done
// when any entry exists for (today, slot), delivered or explicitly
// absent; entries with no slot are treated as morning records.
func BuildRoute(customers []models.Customer, entries []models.DeliveryEntry, today models.Date, slot string) Route {
	marked := make(map[uint]bool)
	for _, e := range entries {
		if e.Date.Equal(today.Time) && e.EffectiveSlot() == slot {
			marked[e.CustomerID] = true
		}
	}

	route := Route{Slot: slot, Pending: []models.Customer{}}
	for _, c := range customers {
		if !c.IsActive || !c.WantsSlot(slot) {
			continue
		}
		route.Total++
		if marked[c.ID] {
			route.Delivered++
		} else {
			route.Pending = append(route.Pending, c)
		}
	}
	return route
}
