// Package interfaces declares the contracts this core consumes from the
// host: the head/item catalog and the world/actor API. The host engine owns
// the implementations; the core only calls through them.
package interfaces

//go:generate mockgen -destination=mock/mock_catalog.go -package=mockinterfaces -source=catalog.go

import (
	"github.com/xreatlabs/headsteal/internal/domain/head"
)

// HeadCatalog resolves head metadata. The core never creates or mutates
// catalog entries.
type HeadCatalog interface {
	// Head returns the metadata for a head key
	Head(key string) (*head.HeadData, bool)

	// HeadKeyForItem maps an opaque item tag to a head key
	HeadKeyForItem(itemTag string) (string, bool)
}

// TextureResolver is an optional capability the catalog may have bound.
// Absence degrades gracefully: heads load without resolved art and
// abilities still function.
type TextureResolver interface {
	// Resolve returns the texture reference for a head key
	Resolve(headKey string) (string, error)
}
