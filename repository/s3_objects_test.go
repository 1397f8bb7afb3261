package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURLKeyRoundTripDefaultEndpoint(t *testing.T) {
	store := NewS3ObjectStore(nil, "product-images", "")

	url := store.PublicURL("products/abc.jpg")
	assert.Equal(t, "https://s3.amazonaws.com/product-images/products/abc.jpg", url)

	key, ok := store.Key(url)
	require.True(t, ok, "every minted URL must resolve back to its key")
	assert.Equal(t, "products/abc.jpg", key)
}

func TestPublicURLKeyRoundTripCustomEndpoint(t *testing.T) {
	store := NewS3ObjectStore(nil, "product-images", "http://localhost:4566/")

	url := store.PublicURL("products/abc.jpg")
	assert.Equal(t, "http://localhost:4566/product-images/products/abc.jpg", url)

	key, ok := store.Key(url)
	require.True(t, ok)
	assert.Equal(t, "products/abc.jpg", key)
}

func TestKeyUsesConfiguredBucket(t *testing.T) {
	store := NewS3ObjectStore(nil, "shop-media", "")

	key, ok := store.Key(store.PublicURL("products/abc.jpg"))
	require.True(t, ok)
	assert.Equal(t, "products/abc.jpg", key)
}

func TestKeyRejectsForeignURL(t *testing.T) {
	store := NewS3ObjectStore(nil, "product-images", "")

	_, ok := store.Key("https://elsewhere.example.com/avatars/abc.jpg")
	assert.False(t, ok)
}
