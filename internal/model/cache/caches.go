// Package cache holds the named view caches. Flushing a cache is the signal
// that the corresponding display view has gone stale: mutating services call
// the Flush* helpers and readers repopulate on the next request.
package cache

import (
	"github.com/casalista/backend/internal/model"
	"github.com/casalista/backend/internal/pkg/cache"
)

var (
	// Properties backs the property listing and the landing view.
	Properties *cache.Singular[[]*model.Property]

	// Owners backs the owner listing.
	Owners *cache.Singular[[]*model.Owner]

	// Enquiries backs the enquiry listing.
	Enquiries *cache.Singular[[]*model.Enquiry]
)

func Initialize() {
	Properties = cache.NewSingular[[]*model.Property]("properties")
	Owners = cache.NewSingular[[]*model.Owner]("owners")
	Enquiries = cache.NewSingular[[]*model.Enquiry]("enquiries")
}

// FlushProperties marks the property list and the landing view stale.
func FlushProperties() {
	Properties.Delete()
}

// FlushOwners marks the owner list stale.
func FlushOwners() {
	Owners.Delete()
}

// FlushEnquiries marks the enquiry list stale.
func FlushEnquiries() {
	Enquiries.Delete()
}
