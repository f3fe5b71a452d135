// Package store implements the catalog repository contracts on GORM.
// Queries propagate storage failures unchanged; only record-not-found is
// translated to the catalog error taxonomy.
package store

import (
	"strings"

	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"gorm.io/gorm"
)

// Ensure every repository satisfies its catalog contract.
var (
	_ catalog.HoneyRepository       = (*GormHoneyRepository)(nil)
	_ catalog.LocalSourceRepository = (*GormLocalSourceRepository)(nil)
	_ catalog.EventRepository       = (*GormEventRepository)(nil)
	_ catalog.CityContentRepository = (*GormCityContentRepository)(nil)
	_ catalog.NewsletterRepository  = (*GormNewsletterRepository)(nil)
)

// applyFilter translates a catalog filter into WHERE clauses. Free-text
// search uses ILIKE on postgres and LOWER/LIKE elsewhere.
func applyFilter(tx *gorm.DB, f *catalog.Filter) *gorm.DB {
	if f == nil || f.IsEmpty() {
		return tx
	}

	if sc := f.SearchCond(); sc != nil {
		exprs := make([]string, 0, len(sc.Columns))
		args := make([]interface{}, 0, len(sc.Columns))
		if strings.EqualFold(tx.Name(), "postgres") {
			pattern := "%" + sc.Term + "%"
			for _, col := range sc.Columns {
				exprs = append(exprs, col+" ILIKE ?")
				args = append(args, pattern)
			}
		} else {
			pattern := "%" + strings.ToLower(sc.Term) + "%"
			for _, col := range sc.Columns {
				exprs = append(exprs, "LOWER("+col+") LIKE ?")
				args = append(args, pattern)
			}
		}
		tx = tx.Where(strings.Join(exprs, " OR "), args...)
	}

	for _, c := range f.InConds() {
		tx = tx.Where(c.Column+" IN ?", c.Values)
	}
	for _, c := range f.RangeConds() {
		tx = tx.Where(c.Column+" "+c.Op+" ?", c.Value)
	}
	for _, c := range f.EqConds() {
		tx = tx.Where(c.Column+" = ?", c.Value)
	}
	return tx
}

// pageOrder yields a deterministic ordering: the requested sort column
// ascending with an id tiebreak, so repeated queries page identically.
func pageOrder(pr catalog.PageRequest) string {
	return pr.SortColumn + " ASC, id ASC"
}
