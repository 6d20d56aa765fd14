package storage

import "testing"

func TestKey_Global(t *testing.T) {
	if got := Key("auth"); got != "authState" {
		t.Fatalf("Key(auth) = %q, want authState", got)
	}
	if got := Key("books"); got != "booksState" {
		t.Fatalf("Key(books) = %q, want booksState", got)
	}
}

func TestUserKey_DistinctUsersNeverCollide(t *testing.T) {
	a := UserKey("rentals", 1)
	b := UserKey("rentals", 2)
	if a == b {
		t.Fatalf("user keys collide: %q", a)
	}
	if a != "rentalsState_1" {
		t.Fatalf("UserKey(rentals,1) = %q, want rentalsState_1", a)
	}
}

func TestUserKey_DistinctSlicesNeverCollide(t *testing.T) {
	if UserKey("rentals", 1) == UserKey("wishlist", 1) {
		t.Fatal("slice keys collide for same user")
	}
	if Key("books") == UserKey("books", 1) {
		t.Fatal("global and scoped keys collide")
	}
}
