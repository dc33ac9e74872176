package enums

// Room identifies one of the spaces the design picker offers. Saved slots are
// not restricted to the catalog; it only drives the picker the frontend shows.
type Room string

const (
	RoomLivingRoom Room = "living_room"
	RoomBedroom    Room = "bedroom"
	RoomKitchen    Room = "kitchen"
	RoomBathroom   Room = "bathroom"
	RoomOffice     Room = "office"
)

var validRooms = []Room{
	RoomLivingRoom,
	RoomBedroom,
	RoomKitchen,
	RoomBathroom,
	RoomOffice,
}

// String implements fmt.Stringer.
func (r Room) String() string {
	return string(r)
}

// RoomNames returns the catalog rooms in display order.
func RoomNames() []string {
	names := make([]string, 0, len(validRooms))
	for _, room := range validRooms {
		names = append(names, room.String())
	}
	return names
}
