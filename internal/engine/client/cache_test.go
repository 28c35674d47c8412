package client_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/engine/client"
)

const productData = `{
	"product": {
		"__typename": "vtex_store_2_0_0_Product",
		"cacheId": "shoe",
		"name": "Shoe",
		"items": [
			{"__typename": "vtex_store_2_0_0_Sku", "cacheId": "1", "price": 10},
			{"__typename": "Anonymous", "price": 5}
		]
	}
}`

func TestEntityCache_Write(t *testing.T) {
	c := client.NewEntityCache()
	require.NoError(t, c.Write(json.RawMessage(productData)))

	want := domain.CacheState{
		"vtex.store@2.x:Product:shoe": {
			"__typename": "vtex_store_2_0_0_Product",
			"cacheId":    "shoe",
			"name":       "Shoe",
			"items": []any{
				map[string]any{"__ref": "vtex.store@2.x:Sku:1"},
				map[string]any{"__typename": "Anonymous", "price": float64(5)},
			},
		},
		"vtex.store@2.x:Sku:1": {
			"__typename": "vtex_store_2_0_0_Sku",
			"cacheId":    "1",
			"price":      float64(10),
		},
	}
	if diff := cmp.Diff(want, c.Extract()); diff != "" {
		t.Errorf("cache mismatch (-want +got):\n%s", diff)
	}
}

func TestEntityCache_MergesFields(t *testing.T) {
	c := client.NewEntityCache()
	require.NoError(t, c.Write(json.RawMessage(`{"a":{"__typename":"vtex_store_2_0_0_Sku","cacheId":"1","price":10}}`)))
	require.NoError(t, c.Write(json.RawMessage(`{"b":{"__typename":"vtex_store_2_0_0_Sku","cacheId":"1","stock":3}}`)))

	entity, ok := c.Get("vtex.store@2.x:Sku:1")
	require.True(t, ok)
	assert.Equal(t, float64(10), entity["price"])
	assert.Equal(t, float64(3), entity["stock"])
	assert.Equal(t, 1, c.Len())
}

func TestEntityCache_EmptyAndInvalidData(t *testing.T) {
	c := client.NewEntityCache()

	require.NoError(t, c.Write(nil))
	require.NoError(t, c.Write(json.RawMessage("null")))
	assert.Equal(t, 0, c.Len())

	err := c.Write(json.RawMessage("{"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to decode response data")
}

func TestEntityCache_RestoreAndExtractAreCopies(t *testing.T) {
	state := domain.CacheState{"vtex.store@2.x:Sku:1": {"price": float64(10)}}

	c := client.NewEntityCache()
	c.Restore(state)
	state["vtex.store@2.x:Sku:1"]["price"] = float64(99)

	extracted := c.Extract()
	assert.Equal(t, float64(10), extracted["vtex.store@2.x:Sku:1"]["price"])

	extracted["vtex.store@2.x:Sku:1"]["price"] = float64(42)
	entity, _ := c.Get("vtex.store@2.x:Sku:1")
	assert.Equal(t, float64(10), entity["price"])

	_, ok := c.Get("missing")
	assert.False(t, ok)
}
