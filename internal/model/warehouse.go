package model

// Location identifies one of the two deployment warehouses. The primary
// site is the only one that manufactures; the secondary site only sells.
type Location string

const (
	LocationPrimary   Location = "PRIMARY"
	LocationSecondary Location = "SECONDARY"
)

func (l Location) Valid() bool {
	return l == LocationPrimary || l == LocationSecondary
}

// Other returns the opposite warehouse.
func (l Location) Other() Location {
	if l == LocationPrimary {
		return LocationSecondary
	}
	return LocationPrimary
}
