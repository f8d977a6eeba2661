// Package directory loads every record file of one kind for a jurisdiction and
// settles the stored entities that the batch no longer contains.
//
// A stored id missing from the batch is first looked up as a legacy identifier
// of another stored entity; a hit merges the old entity into the new one. What
// remains missing is purged on request, otherwise the run is cancelled.
package directory

import (
	"sort"
	"strings"

	"civic-sync/core/reconcile"
	"civic-sync/feature/civic/load"
	"civic-sync/feature/civic/models"
	"civic-sync/feature/civic/records"
	"civic-sync/feature/civic/resolve"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Entity types handled by a directory.
const (
	TypePerson       = "person"
	TypeOrganization = "organization"
)

// Report summarizes one directory sync.
type Report struct {
	Type      string
	Processed int
	Created   int
	Updated   int
	// Merged maps each stale id to the id it was merged into.
	Merged map[string]string
	// Purged lists the ids deleted because they went missing, sorted.
	Purged []string
}

// Directory syncs the record files of one jurisdiction inside a transaction.
type Directory struct {
	tx             *gorm.DB
	res            *resolve.Resolver
	log            *zap.Logger
	jurisdictionID string
	purge          bool
}

// New creates a directory bound to a transaction and the run's resolver.
func New(tx *gorm.DB, res *resolve.Resolver, log *zap.Logger, jurisdictionID string, purge bool) *Directory {
	return &Directory{
		tx:             tx,
		res:            res,
		log:            log.With(zap.String("jurisdiction", jurisdictionID)),
		jurisdictionID: jurisdictionID,
		purge:          purge,
	}
}

// People loads person files and settles missing people. The stored set is every
// person holding a membership in an organization of the jurisdiction.
func (d *Directory) People(files []records.File[*records.Person]) (*Report, error) {
	var stored []string
	err := d.tx.Model(&models.Person{}).
		Joins("JOIN memberships ON memberships.person_id = people.id").
		Joins("JOIN organizations ON organizations.id = memberships.organization_id").
		Where("organizations.jurisdiction_id = ?", d.jurisdictionID).
		Distinct("people.id").
		Pluck("people.id", &stored).Error
	if err != nil {
		return nil, err
	}

	report := newReport(TypePerson)
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.Record.ID] = true
		result, err := load.Person(d.tx, d.res, f.Record)
		if err != nil {
			return nil, err
		}
		d.count(report, f.Name, result)
	}

	return report, d.settle(report, personEntity, stored, seen)
}

// Organizations loads organization files parent-first and settles missing
// committees of the jurisdiction.
func (d *Directory) Organizations(files []records.File[*records.Organization]) (*Report, error) {
	var stored []string
	err := d.tx.Model(&models.Organization{}).
		Where("jurisdiction_id = ? AND classification = ?", d.jurisdictionID, models.ClassificationCommittee).
		Pluck("id", &stored).Error
	if err != nil {
		return nil, err
	}

	nodes := make([]reconcile.Node, len(files))
	for i, f := range files {
		nodes[i] = reconcile.Node{ID: f.Record.ID, Parent: f.Record.Parent}
	}
	order, err := reconcile.OrderByParent(nodes, records.ParentIsInternal)
	if err != nil {
		return nil, err
	}

	report := newReport(TypeOrganization)
	seen := make(map[string]bool, len(files))
	for _, i := range order {
		f := files[i]
		seen[f.Record.ID] = true
		result, err := load.Organization(d.tx, d.res, f.Record)
		if err != nil {
			return nil, err
		}
		d.count(report, f.Name, result)
	}

	return report, d.settle(report, organizationEntity, stored, seen)
}

func newReport(typ string) *Report {
	return &Report{Type: typ, Merged: map[string]string{}}
}

func (d *Directory) count(report *Report, file string, result reconcile.Result) {
	report.Processed++
	switch {
	case result.Created:
		report.Created++
		d.log.Info("Created "+report.Type, zap.String("file", file))
	case result.Updated:
		report.Updated++
		d.log.Info("Updated "+report.Type, zap.String("file", file))
	}
}

// settle merges, purges or rejects the stored ids that are not in seen.
func (d *Directory) settle(report *Report, e entity, stored []string, seen map[string]bool) error {
	var missing []string
	for _, id := range stored {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)

	var remaining []string
	for _, id := range missing {
		target, ok, err := d.mergeTarget(e, id, seen)
		if err != nil {
			return err
		}
		if !ok {
			remaining = append(remaining, id)
			continue
		}
		if err := d.merge(e, id, target); err != nil {
			return err
		}
		report.Merged[id] = target
	}

	if len(report.Merged) > 0 {
		d.log.Warn("Removed via merge", zap.String("type", report.Type), zap.Int("count", len(report.Merged)))
		for _, old := range missing {
			if target, ok := report.Merged[old]; ok {
				d.log.Warn("Merged", zap.String("from", old), zap.String("into", target))
			}
		}
		d.res.Forget()
	}

	if len(remaining) > 0 {
		if !d.purge {
			d.reportMissing(e, remaining)
			return reconcile.Fatal(reconcile.KindMissingIDs, "stored entities went missing, run with --purge to remove them", map[string]string{
				"type":         report.Type,
				"jurisdiction": d.jurisdictionID,
				"ids":          strings.Join(remaining, ","),
			})
		}
		for _, id := range remaining {
			if err := d.remove(e, id, ""); err != nil {
				return err
			}
		}
		report.Purged = remaining
		d.log.Warn("Purged", zap.String("type", report.Type), zap.Strings("ids", remaining))
		d.res.Forget()
	}

	d.log.Info("Directory processed",
		zap.String("type", report.Type),
		zap.Int("processed", report.Processed),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
	)
	return nil
}

// reportMissing logs every missing id with its stored name.
func (d *Directory) reportMissing(e entity, ids []string) {
	type row struct {
		ID   string
		Name string
	}
	var rows []row
	if err := d.tx.Table(e.table).Select("id", "name").Where("id IN ?", ids).Order("id").Scan(&rows).Error; err != nil {
		d.log.Error("Failed to read missing entities", zap.Error(err))
		return
	}

	d.log.Error("Entities went missing, run with --purge to remove",
		zap.String("type", e.typ), zap.Int("count", len(ids)))
	for _, r := range rows {
		d.log.Error("Missing", zap.String("id", r.ID), zap.String("name", r.Name))
	}
}
