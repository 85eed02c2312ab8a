package cart

import (
	"context"
	"strings"

	"github.com/afromanapp/afroman-backend/internal/products"
	"github.com/afromanapp/afroman-backend/internal/slots"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

type productCatalog interface {
	FindByID(id string) (products.Product, bool)
}

// Service exposes the cart engine: merge-on-duplicate adds, exact-pair removes,
// and whole-snapshot persistence after every mutation.
type Service interface {
	Get(ctx context.Context, deviceID string) (View, error)
	Add(ctx context.Context, deviceID, productID, size string) (View, error)
	Remove(ctx context.Context, deviceID, productID, size string) (View, error)
	Clear(ctx context.Context, deviceID string) error
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Slots   slots.Store
	Catalog productCatalog
	Logger  *logger.Logger
}

type service struct {
	slots   slots.Store
	catalog productCatalog
	logg    *logger.Logger
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Slots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slot store is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product catalog is required")
	}
	return &service{
		slots:   params.Slots,
		catalog: params.Catalog,
		logg:    params.Logger,
	}, nil
}

// Get returns the persisted cart with its aggregates. A storage failure
// degrades to an empty cart rather than an error.
func (s *service) Get(ctx context.Context, deviceID string) (View, error) {
	entries := s.load(ctx, deviceID)
	return buildView(entries), nil
}

// Add merges the product/size pair into the cart. A repeat add increments the
// existing entry's quantity and keeps the price computed on the first add.
func (s *service) Add(ctx context.Context, deviceID, productID, size string) (View, error) {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return View{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	size = strings.TrimSpace(size)
	if size != "" && !product.HasSize(size) {
		return View{}, pkgerrors.New(pkgerrors.CodeValidation, "size not offered for product")
	}

	entries := s.load(ctx, deviceID)
	entries = mergeAdd(entries, product, size)
	s.persist(ctx, deviceID, entries)
	return buildView(entries), nil
}

// Remove deletes the single entry matching the (product id, size) pair exactly.
// A miss is a no-op.
func (s *service) Remove(ctx context.Context, deviceID, productID, size string) (View, error) {
	size = strings.TrimSpace(size)
	entries := s.load(ctx, deviceID)

	kept := entries[:0]
	for _, entry := range entries {
		if entry.ProductID == productID && entry.Size == size {
			continue
		}
		kept = append(kept, entry)
	}
	s.persist(ctx, deviceID, kept)
	return buildView(kept), nil
}

// Clear empties the cart and persists the empty snapshot.
func (s *service) Clear(ctx context.Context, deviceID string) error {
	s.persist(ctx, deviceID, []Entry{})
	return nil
}

func mergeAdd(entries []Entry, product products.Product, size string) []Entry {
	for i := range entries {
		if entries[i].ProductID == product.ID && entries[i].Size == size {
			entries[i].Quantity++
			return entries
		}
	}
	return append(entries, Entry{
		ProductID:   product.ID,
		ProductName: product.Name,
		Size:        size,
		Quantity:    1,
		FinalPrice:  FinalPrice(product, size),
	})
}

func buildView(entries []Entry) View {
	if entries == nil {
		entries = []Entry{}
	}
	return View{
		Entries: entries,
		Total:   Total(entries),
		Count:   Count(entries),
	}
}

// load reads the cart snapshot; read failures are logged and treated as empty.
func (s *service) load(ctx context.Context, deviceID string) []Entry {
	var snapshot Snapshot
	found, err := s.slots.Get(ctx, deviceID, slots.SlotCart, &snapshot)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "cart.load failed, starting empty", err)
		}
		return []Entry{}
	}
	if !found {
		return []Entry{}
	}
	return snapshot.Entries
}

// persist writes the whole snapshot; write failures are logged, not surfaced.
func (s *service) persist(ctx context.Context, deviceID string, entries []Entry) {
	if err := s.slots.Set(ctx, deviceID, slots.SlotCart, Snapshot{Entries: entries}); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "cart.persist failed", err)
		}
	}
}
