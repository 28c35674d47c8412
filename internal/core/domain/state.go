package domain

import "maps"

// Entity is one normalized object of the client cache.
type Entity map[string]any

// CacheState is the extracted content of a client cache keyed by data id.
// It is what a server render hands to the browser for hydration.
type CacheState map[string]Entity

// Clone returns a copy whose entities can be mutated independently.
func (s CacheState) Clone() CacheState {
	if s == nil {
		return CacheState{}
	}
	out := make(CacheState, len(s))
	for id, entity := range s {
		out[id] = maps.Clone(entity)
	}
	return out
}
