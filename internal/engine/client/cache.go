package client

import (
	"encoding/json"
	"maps"
	"sync"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/zerr"
)

// refKey marks a field that points at another entity of the cache.
const refKey = "__ref"

// EntityCache stores response objects by their global data id.
// Objects without an id stay embedded in their parent.
type EntityCache struct {
	mu       sync.RWMutex
	entities domain.CacheState
}

// NewEntityCache creates an empty cache.
func NewEntityCache() *EntityCache {
	return &EntityCache{entities: domain.CacheState{}}
}

// Write normalizes the data of a response into the cache.
// Fields of an entity already in the cache are merged.
func (c *EntityCache) Write(data json.RawMessage) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return zerr.Wrap(err, "failed to decode response data")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.normalize(value)
	return nil
}

// normalize stores identifiable objects and returns value with them replaced by references.
func (c *EntityCache) normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = c.normalize(child)
		}
		id, ok := domain.DataIDFromObject(v)
		if !ok {
			return out
		}
		entity, exists := c.entities[id]
		if !exists {
			entity = domain.Entity{}
			c.entities[id] = entity
		}
		maps.Copy(entity, out)
		return map[string]any{refKey: id}
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = c.normalize(child)
		}
		return out
	default:
		return v
	}
}

// Get returns a copy of the entity stored under id.
func (c *EntityCache) Get(id string) (domain.Entity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entity, ok := c.entities[id]
	if !ok {
		return nil, false
	}
	return maps.Clone(entity), true
}

// Len returns the number of entities.
func (c *EntityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entities)
}

// Extract returns a copy of the whole cache.
func (c *EntityCache) Extract() domain.CacheState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entities.Clone()
}

// Restore replaces the cache content with state.
func (c *EntityCache) Restore(state domain.CacheState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entities = state.Clone()
}
