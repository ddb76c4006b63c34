package model

// Catalogs holds the admin-managed lookup lists offered to booking forms:
// theatre names and time-slot labels.  They are stored as JSON arrays in
// the `configurations` key-value table.  Existing bookings are not
// re-validated when an entry is removed; the settlement validator never
// cross-checks against these lists.
type Catalogs struct {
	Theatres  []string `json:"theatres"`
	TimeSlots []string `json:"timeSlots"`
}

// DefaultCatalogs returns the catalogs used before an admin has saved any.
func DefaultCatalogs() Catalogs {
	return Catalogs{
		Theatres: []string{
			"Screen 1",
			"Screen 2",
			"Screen 3",
			"VIP Screen",
			"Premium Hall",
		},
		TimeSlots: []string{
			"10:00 AM - 12:00 PM",
			"12:00 PM - 2:00 PM",
			"2:00 PM - 4:00 PM",
			"4:00 PM - 6:00 PM",
			"6:00 PM - 8:00 PM",
			"8:00 PM - 10:00 PM",
		},
	}
}
