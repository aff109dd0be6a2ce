package editorimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/domain"
)

// closeAtLayout matches the web client's Date.toISOString output.
const closeAtLayout = "2006-01-02T15:04:05.000Z"

// assemblePayload encodes every attachment in order, runs the size checks,
// and serializes the draft into the payload JSON that travels inside the
// backend's "title" field.
func (e *EditorImpl) assemblePayload(ctx context.Context) (string, error) {
	d := e.draft

	encoded := make([]string, 0, len(d.Media))
	for _, item := range d.Media {
		s, err := e.encode(ctx, item)
		if err != nil {
			return "", err
		}
		if err := e.media.ValidateSize(s); err != nil {
			return "", err
		}
		encoded = append(encoded, s)
	}

	payload := domain.PostPayload{
		Title:   d.Title,
		Content: escapeNewlines(d.Body),
		Image:   encoded,
	}

	if d.Mode == domain.ModeTimeCapsule {
		payload.CloseAt = e.closeAt(d.RevealDate)
	}

	if d.Location != nil {
		payload.CapsuleLocation = &d.Location.Name
		payload.Address = &d.Location.Address
		payload.Latitude = &d.Location.Latitude
		payload.Longitude = &d.Location.Longitude
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload: %w", err)
	}
	return string(raw), nil
}

// encode picks the preparation path per item: images are recompressed,
// everything else is base64-encoded as-is. Items restored from a stored post
// have no local file and keep their existing encoding.
func (e *EditorImpl) encode(ctx context.Context, item domain.MediaItem) (string, error) {
	if item.Path == "" {
		return item.Encoded, nil
	}
	if item.IsImage() {
		return e.media.CompressImage(ctx, item.Path)
	}
	return e.media.EncodeFile(ctx, item.Path)
}

// closeAt composes the reveal instant: midnight of the chosen day shifted
// back by the configured timezone offset, serialized the way the web client
// does. Out-of-range days roll forward via time.Date normalization.
func (e *EditorImpl) closeAt(rd domain.RevealDate) string {
	t, ok := e.revealInstant(rd)
	if !ok {
		return ""
	}
	return t.UTC().Format(closeAtLayout)
}

func (e *EditorImpl) revealInstant(rd domain.RevealDate) (time.Time, bool) {
	year, err := strconv.Atoi(rd.Year)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(rd.Month)
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(rd.Day)
	if err != nil {
		return time.Time{}, false
	}

	offset := time.Duration(e.config.Capsy.TimezoneOffsetHours) * time.Hour
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Add(-offset), true
}

// revealDateFrom reverses closeAt: shift the stored instant forward by the
// offset and read its calendar date.
func (e *EditorImpl) revealDateFrom(closeAt string) (domain.RevealDate, bool) {
	t, err := time.Parse(time.RFC3339, closeAt)
	if err != nil {
		return domain.RevealDate{}, false
	}

	offset := time.Duration(e.config.Capsy.TimezoneOffsetHours) * time.Hour
	local := t.UTC().Add(offset)
	return domain.RevealDate{
		Year:  strconv.Itoa(local.Year()),
		Month: strconv.Itoa(int(local.Month())),
		Day:   strconv.Itoa(local.Day()),
	}, true
}

func decodePayload(title string) (domain.PostPayload, error) {
	var payload domain.PostPayload
	if err := json.Unmarshal([]byte(title), &payload); err != nil {
		return domain.PostPayload{}, fmt.Errorf("failed to decode post payload: %w", err)
	}
	return payload, nil
}

func restoredItem(index int, encoded string) domain.MediaItem {
	return domain.MediaItem{
		Name:    fmt.Sprintf("image-%d.jpg", index),
		MIME:    "image/jpeg",
		Encoded: encoded,
	}
}

// The backend stores content with newlines as literal backslash-n.
func escapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
