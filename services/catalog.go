package services

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/12432383-sudo/housecraft-shop/models"
	"github.com/12432383-sudo/housecraft-shop/repository"
)

// Catalog is the single source of truth for the in-session product list and
// the only component that originates product mutations. Mutations apply to
// the local list first; the remote store is an eventually-consistent mirror
// that update/delete push to without blocking the caller. If the remote is
// down, the catalog degrades to local-only state rather than failing the
// admin flow.
type Catalog struct {
	store   repository.ProductStore
	samples []models.Product
	log     *zap.Logger
	node    *snowflake.Node

	mu       sync.RWMutex
	products []models.Product

	// mirrors tracks detached remote writes so Flush can drain them at
	// shutdown and in tests.
	mirrors sync.WaitGroup
}

func NewCatalog(store repository.ProductStore, samples []models.Product, log *zap.Logger) (*Catalog, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return &Catalog{store: store, samples: samples, log: log, node: node}, nil
}

// Load populates the catalog once at startup: the remote table is the
// primary source, the bundled samples the static fallback. Any remote error
// (including an unprovisioned table) and an empty table both resolve to the
// samples, so the shop never starts empty. Rows with an unrecognized
// category are dropped, with a warning as the only audit trail.
func (c *Catalog) Load(ctx context.Context) {
	remote, err := c.store.List(ctx)
	if err != nil {
		c.log.Warn("product load failed, using bundled samples", zap.Error(err))
		c.setProducts(c.cloneAll(c.samples))
		return
	}
	if len(remote) == 0 {
		c.log.Info("product table empty, using bundled samples")
		c.setProducts(c.cloneAll(c.samples))
		return
	}

	kept := make([]models.Product, 0, len(remote))
	for _, p := range remote {
		if !models.ValidCategory(p.Category) {
			c.log.Warn("dropping product with unrecognized category",
				zap.String("id", p.ID),
				zap.String("category", string(p.Category)))
			continue
		}
		kept = append(kept, p)
	}
	c.setProducts(kept)
}

func (c *Catalog) setProducts(products []models.Product) {
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
}

// Add persists the draft remotely and prepends the stored row on success.
// On remote failure it falls back to a local-only product with a
// snowflake-derived id and current timestamps, appended to the list; the
// failure is logged, not returned, so a remote outage never blocks the
// admin.
func (c *Catalog) Add(ctx context.Context, draft models.Product) models.Product {
	stored, err := c.store.Insert(ctx, draft)
	if err == nil {
		c.mu.Lock()
		c.products = append([]models.Product{stored}, c.products...)
		c.mu.Unlock()
		return stored.Clone()
	}

	c.log.Warn("product insert failed, keeping local-only product", zap.Error(err))
	now := time.Now().UTC()
	draft.ID = c.node.Generate().String()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	c.mu.Lock()
	c.products = append(c.products, draft)
	c.mu.Unlock()
	return draft.Clone()
}

// Update applies the patch to the matching product immediately, always
// bumping UpdatedAt, then mirrors the named fields remotely in the
// background. An empty patch still bumps UpdatedAt locally but produces no
// remote write. Returns the patched product, or false when the id is
// unknown.
func (c *Catalog) Update(_ context.Context, id string, patch models.ProductPatch) (models.Product, bool) {
	now := time.Now().UTC()

	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return models.Product{}, false
	}
	patch.Apply(&c.products[idx])
	c.products[idx].UpdatedAt = now
	updated := c.products[idx].Clone()
	c.mu.Unlock()

	if patch.IsZero() {
		return updated, true
	}

	fields := remoteFields(patch)
	fields["updated_at"] = now.Format(time.RFC3339)
	c.mirror(func(ctx context.Context) {
		if err := c.store.Update(ctx, id, fields); err != nil {
			c.log.Error("product mirror update failed", zap.String("id", id), zap.Error(err))
		}
	})
	return updated, true
}

// Delete removes the product locally first, then issues the remote delete
// in the background. A remote failure is logged and never rolled back.
func (c *Catalog) Delete(_ context.Context, id string) bool {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx >= 0 {
		c.products = append(c.products[:idx], c.products[idx+1:]...)
	}
	c.mu.Unlock()
	if idx < 0 {
		return false
	}

	c.mirror(func(ctx context.Context) {
		if err := c.store.Delete(ctx, id); err != nil {
			c.log.Error("product mirror delete failed", zap.String("id", id), zap.Error(err))
		}
	})
	return true
}

// Get returns a copy of the matching product.
func (c *Catalog) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx := c.indexOf(id); idx >= 0 {
		return c.products[idx].Clone(), true
	}
	return models.Product{}, false
}

// Snapshot returns a copy of the current list in storage order.
func (c *Catalog) Snapshot() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cloneAll(c.products)
}

// Flush waits for every in-flight mirror write. Called at shutdown so local
// mutations reach the remote before the process exits.
func (c *Catalog) Flush() {
	c.mirrors.Wait()
}

// indexOf must be called with the mutex held.
func (c *Catalog) indexOf(id string) int {
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) cloneAll(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) mirror(fn func(ctx context.Context)) {
	c.mirrors.Add(1)
	go func() {
		defer c.mirrors.Done()
		fn(context.Background())
	}()
}

// remoteFields maps the patch to the snake_case columns it names. Absent
// fields stay out of the map so the remote row keeps its values.
func remoteFields(p models.ProductPatch) map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.NameAr != nil {
		fields["name_ar"] = *p.NameAr
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.DescriptionAr != nil {
		fields["description_ar"] = *p.DescriptionAr
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.ShowPrice != nil {
		fields["show_price"] = *p.ShowPrice
	}
	if p.Category != nil {
		fields["category"] = string(*p.Category)
	}
	if p.Images != nil {
		fields["images"] = *p.Images
	}
	if p.SizeImage != nil {
		fields["size_image"] = *p.SizeImage
	}
	if p.SizeType != nil {
		fields["size_type"] = string(*p.SizeType)
	}
	if p.Sizes != nil {
		fields["sizes"] = *p.Sizes
	}
	if p.CustomNotes != nil {
		fields["custom_notes"] = *p.CustomNotes
	}
	if p.CustomNotesAr != nil {
		fields["custom_notes_ar"] = *p.CustomNotesAr
	}
	if p.IsVisible != nil {
		fields["is_visible"] = *p.IsVisible
	}
	if p.Featured != nil {
		fields["featured"] = *p.Featured
	}
	return fields
}
