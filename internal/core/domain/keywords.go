package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// KeywordSeparator joins keywords in the persisted campaign representation.
const KeywordSeparator = ", "

// KeywordSet is an ordered, duplicate-free list of keywords attached to a
// draft. The zero value is an empty set ready for use.
type KeywordSet struct {
	items []string
}

// ParseKeywords splits a persisted keyword string. Empty and repeated
// entries are dropped.
func ParseKeywords(s string) KeywordSet {
	var ks KeywordSet
	if s == "" {
		return ks
	}
	for _, k := range strings.Split(s, KeywordSeparator) {
		ks.Add(k)
	}
	return ks
}

// Add appends keyword after trimming it. It reports false when the trimmed
// keyword is empty or already present (exact, case-sensitive match).
func (s *KeywordSet) Add(keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || s.Contains(keyword) {
		return false
	}
	s.items = append(s.items, keyword)
	return true
}

// Remove deletes the first exact match of keyword.
func (s *KeywordSet) Remove(keyword string) bool {
	i := slices.Index(s.items, keyword)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *KeywordSet) Clear() { s.items = nil }

func (s KeywordSet) Contains(keyword string) bool { return slices.Contains(s.items, keyword) }

func (s KeywordSet) Len() int { return len(s.items) }

// Keywords returns a copy of the keywords in insertion order.
func (s KeywordSet) Keywords() []string {
	return append([]string{}, s.items...)
}

// Clone returns a set that shares no storage with s.
func (s KeywordSet) Clone() KeywordSet {
	return KeywordSet{items: slices.Clone(s.items)}
}

// String returns the flattened transport form.
func (s KeywordSet) String() string {
	return strings.Join(s.items, KeywordSeparator)
}

func (s KeywordSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keywords())
}

// UnmarshalJSON reads the array form written by MarshalJSON, applying the
// same trimming and de-duplication as Add.
func (s *KeywordSet) UnmarshalJSON(b []byte) error {
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	s.Clear()
	for _, k := range items {
		s.Add(k)
	}
	return nil
}
