package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ShareLink is the client-built URL handed to a note's recipient.
//
// For unprotected notes the raw content key rides in the URL fragment (the
// part after '#'), which browsers never transmit to any server. This is the
// load-bearing mechanism of the zero-knowledge property: no code path may
// send the fragment to a network endpoint, a log, or an error report.
// Password-protected notes carry no fragment at all.
type ShareLink struct {
	// BaseURL is the web origin serving notes, e.g. "https://vaultnote.app".
	BaseURL string

	// NoteID is the opaque server-assigned identifier.
	NoteID string

	// Key is the exported content-key string, empty for protected notes.
	Key string
}

// ErrMalformedShareLink is returned by ParseShareLink when the URL does not
// carry a note identifier under the expected /n/{id} path.
var ErrMalformedShareLink = errors.New("malformed share link")

// String assembles the shareable URL. Key, when present, is appended as the
// fragment and only as the fragment.
func (s ShareLink) String() string {
	link := fmt.Sprintf("%s/n/%s", strings.TrimRight(s.BaseURL, "/"), s.NoteID)
	if s.Key != "" {
		link += "#" + s.Key
	}
	return link
}

// ParseShareLink splits a share URL back into its components. Pure string
// work: the fragment is read from the URL value the caller already holds,
// nothing is fetched.
func ParseShareLink(raw string) (ShareLink, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ShareLink{}, fmt.Errorf("%w: %w", ErrMalformedShareLink, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] != "n" || parts[1] == "" {
		return ShareLink{}, ErrMalformedShareLink
	}

	base := u.Scheme + "://" + u.Host
	if u.Scheme == "" || u.Host == "" {
		return ShareLink{}, ErrMalformedShareLink
	}

	return ShareLink{
		BaseURL: base,
		NoteID:  parts[1],
		Key:     u.Fragment,
	}, nil
}
