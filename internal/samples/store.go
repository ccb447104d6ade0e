// Package samples stores recorded JSON payloads in memory and indexes them
// by the object field names they contain.
package samples

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sample is one recorded JSON payload.
type Sample struct {
	ID      string    `json:"sample_id"`
	Label   string    `json:"label,omitempty"`
	Body    []byte    `json:"-"`
	Parsed  any       `json:"-"`
	Preview string    `json:"preview"`
	AddedAt time.Time `json:"added_at"`
}

// Store holds samples and maintains an inverted index from field-name tokens
// to the samples containing them, using Roaring bitmaps.
type Store struct {
	mu sync.RWMutex

	idToDoc   map[string]uint32
	docs      []*Sample
	nextDocID uint32

	idxField map[string]*roaring.Bitmap

	maxSamples      int
	previewMaxBytes int
}

// NewStore creates a sample store. maxSamples caps how many samples are
// retained; Add fails once the cap is reached.
func NewStore(maxSamples, previewMaxBytes int) *Store {
	return &Store{
		idToDoc:         make(map[string]uint32),
		docs:            make([]*Sample, 0, 256),
		idxField:        make(map[string]*roaring.Bitmap),
		maxSamples:      maxSamples,
		previewMaxBytes: previewMaxBytes,
	}
}

// Add parses and stores a JSON payload, indexing its field names.
// The body must be a valid JSON document.
func (s *Store) Add(label string, body []byte) (*Sample, error) {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSamples > 0 && len(s.docs) >= s.maxSamples {
		return nil, fmt.Errorf("sample store is full (%d samples)", s.maxSamples)
	}

	docID := s.nextDocID
	s.nextDocID++

	sample := &Sample{
		ID:      fmt.Sprintf("s-%06d", docID+1),
		Label:   label,
		Body:    body,
		Parsed:  parsed,
		Preview: preview(body, s.previewMaxBytes),
		AddedAt: time.Now(),
	}

	s.idToDoc[sample.ID] = docID
	s.docs = append(s.docs, sample)

	for _, token := range collectFieldTokens(parsed) {
		bm, ok := s.idxField[token]
		if !ok {
			bm = roaring.New()
			s.idxField[token] = bm
		}
		bm.Add(docID)
	}

	return sample, nil
}

// Get returns a sample by ID.
func (s *Store) Get(id string) (*Sample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docID, ok := s.idToDoc[id]
	if !ok {
		return nil, false
	}
	return s.docs[docID], true
}

// All returns every stored sample in insertion order.
func (s *Store) All() []*Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Sample, len(s.docs))
	copy(out, s.docs)
	return out
}

// Len returns the number of stored samples.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// preview returns a truncated single-line rendering of a JSON body.
func preview(body []byte, maxBytes int) string {
	if maxBytes <= 0 || len(body) <= maxBytes {
		return string(body)
	}
	return string(body[:maxBytes]) + fmt.Sprintf("... (%d more bytes)", len(body)-maxBytes)
}
