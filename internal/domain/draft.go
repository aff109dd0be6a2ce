package domain

import "strings"

// Mode distinguishes an ordinary post from a time capsule. The backend keeps
// the two in separate channels.
type Mode string

const (
	ModeGeneral     Mode = "general"
	ModeTimeCapsule Mode = "timeCapsule"
)

// RevealDate is the user-entered capsule open date, kept as raw strings so
// field-level validation can run against exactly what was typed.
type RevealDate struct {
	Year  string
	Month string
	Day   string
}

func (rd RevealDate) Complete() bool {
	return rd.Year != "" && rd.Month != "" && rd.Day != ""
}

// MediaItem is one attachment. Path points at a local file for freshly
// attached media; items restored from an existing post carry only the
// already-encoded representation.
type MediaItem struct {
	Name    string
	Path    string
	MIME    string
	Encoded string
}

func (m MediaItem) IsImage() bool {
	return strings.HasPrefix(m.MIME, "image/")
}

// Location is a place chosen for a capsule, at most one per draft.
type Location struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// Draft is the in-memory state of a post being composed or edited. It is
// owned by the editor orchestrator and mutated only through its methods.
type Draft struct {
	Title      string
	Body       string
	Mode       Mode
	Media      []MediaItem
	RevealDate RevealDate
	Location   *Location
}
