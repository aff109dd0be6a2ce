// Package locationpicker drives place selection for a capsule: keyword
// search against the places client plus keyboard navigation over the result
// list. Key handling is pure; only Search touches the network.
package locationpicker

import (
	"context"
	"strconv"
	"strings"

	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/places"
	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
)

type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyTab
	KeyEnter
)

// Action tells the caller what a key press asks for. Search is reported
// rather than executed so a UI can run it asynchronously.
type Action int

const (
	ActionNone Action = iota
	ActionSearch
	ActionSelect
)

var ErrEmptyKeyword = apperrors.New("please enter a place to search for")

type Model struct {
	places places.Client
	logger logger.Logger

	Keyword   string
	results   []domain.Place
	highlight int
	selected  *domain.Location
}

func New(client places.Client, log logger.Logger) *Model {
	return &Model{
		places:    client,
		logger:    log.WithComponent("LocationPicker"),
		highlight: -1,
	}
}

// Search runs the keyword search. Blank keywords are rejected locally before
// any network call. A fresh result set always resets the highlight.
func (m *Model) Search(ctx context.Context) error {
	if strings.TrimSpace(m.Keyword) == "" {
		return ErrEmptyKeyword
	}

	results, err := m.places.KeywordSearch(ctx, m.Keyword)
	if err != nil {
		m.results = nil
		m.highlight = -1
		return apperrors.Wrap(err, "place search failed")
	}

	m.results = results
	m.highlight = -1
	return nil
}

// HandleKey applies one key press. Down and up clamp at the list edges, tab
// wraps past the end back to the first result, and enter either selects the
// highlighted place or asks for a search when nothing is highlighted.
func (m *Model) HandleKey(k Key) Action {
	switch k {
	case KeyDown:
		if m.highlight < len(m.results)-1 {
			m.highlight++
		}
	case KeyUp:
		if m.highlight > 0 {
			m.highlight--
		}
	case KeyTab:
		if m.highlight < len(m.results)-1 {
			m.highlight++
		} else {
			m.highlight = 0
		}
	case KeyEnter:
		if m.highlight >= 0 && m.highlight < len(m.results) {
			m.Select(m.highlight)
			return ActionSelect
		}
		return ActionSearch
	}
	return ActionNone
}

// Select normalizes the chosen place into a Location; the service reports
// y as latitude and x as longitude, both as strings.
func (m *Model) Select(index int) *domain.Location {
	if index < 0 || index >= len(m.results) {
		return nil
	}
	place := m.results[index]

	lat, err := strconv.ParseFloat(place.Y, 64)
	if err != nil {
		m.logger.Warn("Place carried an unparseable latitude", "place", place.Name, "y", place.Y)
	}
	lng, err := strconv.ParseFloat(place.X, 64)
	if err != nil {
		m.logger.Warn("Place carried an unparseable longitude", "place", place.Name, "x", place.X)
	}

	m.selected = &domain.Location{
		Name:      place.Name,
		Address:   place.Address,
		Latitude:  lat,
		Longitude: lng,
	}
	return m.selected
}

func (m *Model) Results() []domain.Place    { return m.results }
func (m *Model) Highlight() int             { return m.highlight }
func (m *Model) Selected() *domain.Location { return m.selected }

// Hover mirrors mouse hover in the web client, which also moves the
// highlight.
func (m *Model) Hover(index int) {
	if index >= 0 && index < len(m.results) {
		m.highlight = index
	}
}
