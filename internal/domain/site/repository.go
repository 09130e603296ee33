package site

import "context"

type SiteRepository interface {
	Create(ctx context.Context, newSite Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	List(ctx context.Context) ([]Site, error)
	Update(ctx context.Context, s Site) error
	// Delete removes a site. Fails with ErrSiteHasShifts while any shift
	// still references it.
	Delete(ctx context.Context, id string) error
	CountShifts(ctx context.Context, id string) (int64, error)
}
