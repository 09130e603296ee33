package site

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/site"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/geocode"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/validator"
)

type SiteServiceImpl struct {
	siteRepo site.SiteRepository
	geocoder *geocode.Client
}

func NewSiteService(siteRepo site.SiteRepository, geocoder *geocode.Client) site.SiteService {
	return &SiteServiceImpl{
		siteRepo: siteRepo,
		geocoder: geocoder,
	}
}

// Create implements site.SiteService.
func (s *SiteServiceImpl) Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	created, err := s.siteRepo.Create(ctx, site.Site{
		Name:         strings.TrimSpace(req.Name),
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	})
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to create site: %w", err)
	}

	return toSiteResponse(created), nil
}

// Get implements site.SiteService.
func (s *SiteServiceImpl) Get(ctx context.Context, id string) (site.SiteResponse, error) {
	siteData, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return toSiteResponse(siteData), nil
}

// List implements site.SiteService.
func (s *SiteServiceImpl) List(ctx context.Context) ([]site.SiteResponse, error) {
	sites, err := s.siteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		responses = append(responses, toSiteResponse(st))
	}
	return responses, nil
}

// Update implements site.SiteService. Only the provided fields change;
// geofence fields can be set independently, a check-in still requires all
// three to be present.
func (s *SiteServiceImpl) Update(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	siteData, err := s.siteRepo.GetByID(ctx, req.ID)
	if err != nil {
		return site.SiteResponse{}, err
	}

	if req.Name != nil {
		siteData.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		siteData.Address = req.Address
	}
	if req.Latitude != nil {
		siteData.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		siteData.Longitude = req.Longitude
	}
	if req.RadiusMeters != nil {
		siteData.RadiusMeters = req.RadiusMeters
	}

	if err := s.siteRepo.Update(ctx, siteData); err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to update site: %w", err)
	}

	return toSiteResponse(siteData), nil
}

// Delete implements site.SiteService. Sites with shifts cannot be removed.
func (s *SiteServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.siteRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.siteRepo.Delete(ctx, id)
}

// Geocode implements site.SiteService.
func (s *SiteServiceImpl) Geocode(ctx context.Context, address string) (site.GeocodeResponse, error) {
	if validator.IsEmpty(address) {
		return site.GeocodeResponse{}, validator.ValidationErrors{{
			Field:   "address",
			Message: "address is required",
		}}
	}

	result, err := s.geocoder.Search(ctx, address)
	if err != nil {
		if errors.Is(err, geocode.ErrNoMatch) {
			return site.GeocodeResponse{}, geocode.ErrNoMatch
		}
		return site.GeocodeResponse{}, fmt.Errorf("failed to geocode address: %w", err)
	}

	return site.GeocodeResponse{
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		DisplayName: result.DisplayName,
	}, nil
}

func toSiteResponse(st site.Site) site.SiteResponse {
	return site.SiteResponse{
		ID:           st.ID,
		Name:         st.Name,
		Address:      st.Address,
		Latitude:     st.Latitude,
		Longitude:    st.Longitude,
		RadiusMeters: st.RadiusMeters,
		HasGeofence:  st.HasGeofence(),
		CreatedAt:    st.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    st.UpdatedAt.Format(time.RFC3339),
	}
}
