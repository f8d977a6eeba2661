// Package resolve turns the textual references found in records (party names,
// chamber types, district labels, organization and person ids) into stored rows.
package resolve

import (
	"errors"
	"fmt"
	"sort"

	"civic-sync/core/reconcile"
	"civic-sync/feature/civic/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"gorm.io/gorm"
)

// DefaultCacheSize bounds the lookup cache when no size is configured.
const DefaultCacheSize = 128

// LegacyDistricts tells whether a district label was retired by redistricting.
type LegacyDistricts interface {
	IsLegacyDistrict(jurisdictionID, roleType, label string) bool
}

// Resolver resolves references inside one sync run.
//
// Lookups are cached by their arguments. Only hits are cached, so a reference
// created later in the same run is still found. A Resolver must not outlive
// the transaction it was created with.
type Resolver struct {
	tx     *gorm.DB
	legacy LegacyDistricts
	cache  *lru.Cache[string, any]
}

// New creates a resolver reading through tx. A size <= 0 uses DefaultCacheSize.
func New(tx *gorm.DB, legacy LegacyDistricts, size int) (*Resolver, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, any](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup cache: %w", err)
	}
	return &Resolver{tx: tx, legacy: legacy, cache: cache}, nil
}

// Party finds the party organization with the given name.
func (r *Resolver) Party(name string) (*models.Organization, error) {
	org, err := lookup(r, "party|"+name, func(org *models.Organization) error {
		return r.tx.Where("classification = ? AND name = ?", models.ClassificationParty, name).Take(org).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx := map[string]string{"party": name}
		if hint := r.suggestParty(name); hint != "" {
			ctx["did_you_mean"] = hint
		}
		return nil, reconcile.Fatal(reconcile.KindResolution, "no such party", ctx)
	}
	return org, err
}

// Organization finds the organization of a jurisdiction by classification
// (upper, lower, legislature, executive, government...).
func (r *Resolver) Organization(classification, jurisdictionID string) (*models.Organization, error) {
	key := "class|" + classification + "|" + jurisdictionID
	org, err := lookup(r, key, func(org *models.Organization) error {
		return r.tx.Where("classification = ? AND jurisdiction_id = ?", classification, jurisdictionID).
			Order("id").Take(org).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reconcile.Fatal(reconcile.KindResolution, "no such organization", map[string]string{
			"classification": classification,
			"jurisdiction":   jurisdictionID,
		})
	}
	return org, err
}

// OrganizationByID finds an organization by primary key.
func (r *Resolver) OrganizationByID(id string) (*models.Organization, error) {
	org, err := lookup(r, "org|"+id, func(org *models.Organization) error {
		return r.tx.Where("id = ?", id).Take(org).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reconcile.Fatal(reconcile.KindResolution, "no such organization", map[string]string{"id": id})
	}
	return org, err
}

// Person finds a person by primary key.
func (r *Resolver) Person(id string) (*models.Person, error) {
	p, err := lookup(r, "person|"+id, func(p *models.Person) error {
		return r.tx.Select("id", "name").Where("id = ?", id).Take(p).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reconcile.Fatal(reconcile.KindResolution, "no such person", map[string]string{"id": id})
	}
	return p, err
}

// Seat resolves a legislative role to its chamber and post.
//
// ok is false when the post does not exist but the label is a legacy district
// for the jurisdiction and role type; the role must then be skipped silently.
func (r *Resolver) Seat(roleType, jurisdictionID, district string) (*models.Organization, *models.Post, bool, error) {
	org, err := r.Organization(roleType, jurisdictionID)
	if err != nil {
		return nil, nil, false, err
	}

	post, err := lookup(r, "post|"+org.ID+"|"+district, func(p *models.Post) error {
		return r.tx.Where("organization_id = ? AND label = ?", org.ID, district).Take(p).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if r.legacy != nil && r.legacy.IsLegacyDistrict(jurisdictionID, roleType, district) {
			return nil, nil, false, nil
		}
		return nil, nil, false, reconcile.Fatal(reconcile.KindResolution, "no such post", map[string]string{
			"type":         roleType,
			"jurisdiction": jurisdictionID,
			"district":     district,
		})
	}
	if err != nil {
		return nil, nil, false, err
	}
	return org, post, true, nil
}

// Forget drops every cached lookup. Called after rows are deleted mid-run.
func (r *Resolver) Forget() {
	r.cache.Purge()
}

// suggestParty returns the closest stored party name, or "" when nothing is close.
func (r *Resolver) suggestParty(name string) string {
	var names []string
	if err := r.tx.Model(&models.Organization{}).
		Where("classification = ?", models.ClassificationParty).
		Pluck("name", &names).Error; err != nil {
		return ""
	}

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// lookup returns the cached value for key or runs query and caches a hit.
func lookup[T any](r *Resolver, key string, query func(*T) error) (*T, error) {
	if v, ok := r.cache.Get(key); ok {
		return v.(*T), nil
	}

	out := new(T)
	if err := query(out); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve %s: %w", key, err)
	}
	r.cache.Add(key, out)
	return out, nil
}
