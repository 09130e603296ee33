package site

import "context"

type SiteService interface {
	Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	Get(ctx context.Context, id string) (SiteResponse, error)
	List(ctx context.Context) ([]SiteResponse, error)
	Update(ctx context.Context, req UpdateSiteRequest) (SiteResponse, error)
	Delete(ctx context.Context, id string) error
	// Geocode resolves a free-text address to a single best-match coordinate
	// pair. Advisory only; never written to storage by this call.
	Geocode(ctx context.Context, address string) (GeocodeResponse, error)
}
