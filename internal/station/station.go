package station

// Station is one internet-radio entry from the player's registry.
type Station struct {
	Index    int    // zero-based position in registry order, assigned at load, never reused
	Location string // stream URI handed to the player
	Title    string // display name, used to correlate with the "now playing" report
	Rating   int    // star rating, 0 when the registry carries none
}
