package domain

// PostPayload is the JSON document the backend persists inside the post's
// "title" field. The overloading is a wire convention the service relies on,
// so the shape here must stay exactly compatible: content carries newlines as
// literal "\n" sequences, closeAt is an ISO timestamp with milliseconds, and
// the four location fields appear together or not at all.
type PostPayload struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	CloseAt         string   `json:"closeAt,omitempty"`
	Image           []string `json:"image"`
	CapsuleLocation *string  `json:"capsuleLocation,omitempty"`
	Address         *string  `json:"address,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}
