package enums

import "testing"

func TestCatalogNames(t *testing.T) {
	if len(RoomNames()) != len(validRooms) {
		t.Fatal("room names out of sync with catalog")
	}
	if len(CategoryNames()) != len(validCategories) {
		t.Fatal("category names out of sync with catalog")
	}
	if RoomNames()[0] != RoomLivingRoom.String() {
		t.Fatalf("unexpected first room %q", RoomNames()[0])
	}
	if CategoryNames()[0] != CategoryFlooring.String() {
		t.Fatalf("unexpected first category %q", CategoryNames()[0])
	}
}
