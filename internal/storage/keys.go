package storage

import "strconv"

// Key returns the storage key for a globally scoped slice, e.g.
// Key("auth") == "authState". Global slices are shared across users.
func Key(slice string) string {
	return slice + "State"
}

// UserKey returns the storage key for a user-scoped slice, e.g.
// UserKey("rentals", 3) == "rentalsState_3". Distinct users never
// collide: the user id is part of the key.
func UserKey(slice string, userID int64) string {
	return slice + "State_" + strconv.FormatInt(userID, 10)
}
