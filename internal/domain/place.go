package domain

// Place is a raw candidate from the Kakao keyword search. Coordinates arrive
// as strings (x = longitude, y = latitude) and are only parsed when the user
// actually picks a place.
type Place struct {
	Name    string `json:"place_name"`
	Address string `json:"address_name"`
	X       string `json:"x"`
	Y       string `json:"y"`
}
