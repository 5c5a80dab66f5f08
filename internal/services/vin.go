package service

import (
	"context"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/catalog"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/vin"
	"github.com/zizo-ux/tm-auto-elite-shop/pkg/vpic"
)

type VinService interface {
	Lookup(ctx context.Context, rawVin string) (*models.VinLookupResponse, error)
}

type vinService struct {
	client vpic.Client
	store  *catalog.Store
}

func NewVinService(client vpic.Client, store *catalog.Store) VinService {
	return &vinService{client: client, store: store}
}

// Lookup validates the VIN locally before spending a round trip on vPIC,
// then matches the decoded vehicle against the catalog snapshot.
func (s *vinService) Lookup(ctx context.Context, rawVin string) (*models.VinLookupResponse, error) {

	normalized := vin.Normalize(rawVin)

	if err := vin.Validate(normalized); err != nil {
		return nil, errors.InvalidVinError(err.Error())
	}

	info, err := s.client.DecodeVin(ctx, normalized)
	if err != nil {
		return nil, errors.ThirdPartyError("Vehicle lookup service unavailable").WithError(err)
	}

	return &models.VinLookupResponse{
		Vehicle:         *info,
		CompatibleParts: s.store.MatchingVehicle(*info),
	}, nil
}
