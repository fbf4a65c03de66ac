// Package score persists the high score as a bare textual integer in
// the platform's per-app data directory.
package score

import (
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

const (
	storeObject = "skyraid"
	storeProp   = "highscore"
)

// Store is a best-effort high score store backed by gdata. When the
// backing storage cannot be opened the store degrades to an in-memory
// value that lasts for the process lifetime.
type Store struct {
	m      *gdata.Manager
	memory int
}

// Open creates a store under the given app name.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}
	}
	return &Store{m: m}
}

// Load returns the stored high score. Missing, unreadable or malformed
// data yields zero.
func (s *Store) Load() int {
	if s.m == nil {
		return s.memory
	}
	if !s.m.ObjectPropExists(storeObject, storeProp) {
		return 0
	}
	data, err := s.m.LoadObjectProp(storeObject, storeProp)
	if err != nil {
		return 0
	}
	return Decode(data)
}

// Save overwrites the stored high score. Write failures are ignored.
func (s *Store) Save(v int) {
	if s.m == nil {
		s.memory = v
		return
	}
	_ = s.m.SaveObjectProp(storeObject, storeProp, Encode(v))
}

// Encode renders a score as its textual form.
func Encode(v int) []byte {
	return []byte(strconv.Itoa(v))
}

// Decode parses a textual score, tolerating surrounding whitespace.
// Anything unparseable or negative decodes to zero.
func Decode(data []byte) int {
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
