// internal/jobs/filter.go
package jobs

import (
	"strings"

	"qsrhire/internal/models"
)

// Criteria narrows a job catalog. Zero-valued parts are ignored. The
// wage range is carried for forward compatibility but not applied: the
// catalog's pay rate is a display label with no numeric field.
type Criteria struct {
	WageMin int
	WageMax int
	Roles   []string
	Shifts  []string
}

// IsZero reports whether the criteria would keep every job.
func (c Criteria) IsZero() bool {
	return c.WageMin == 0 && c.WageMax == 0 && len(c.Roles) == 0 && len(c.Shifts) == 0
}

// Filter returns the jobs matching the criteria. Pure: the input slice
// is never mutated and identical inputs give identical results. Roles
// match exactly; shift labels match case-insensitively as substrings of
// the job's shift timing.
func Filter(all []models.JobListing, criteria Criteria) []models.JobListing {
	out := make([]models.JobListing, 0, len(all))
	for _, job := range all {
		if len(criteria.Roles) > 0 && !containsExact(criteria.Roles, job.Role) {
			continue
		}
		if len(criteria.Shifts) > 0 && !matchesShift(criteria.Shifts, job.ShiftTiming) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func containsExact(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func matchesShift(shifts []string, shiftTiming string) bool {
	timing := strings.ToLower(shiftTiming)
	for _, shift := range shifts {
		if strings.Contains(timing, strings.ToLower(shift)) {
			return true
		}
	}
	return false
}

// View holds a catalog plus the worker's current filter state, keeping
// "no results" distinguishable from "not yet filtered".
type View struct {
	catalog  []models.JobListing
	results  []models.JobListing
	filtered bool
}

func NewView(catalog []models.JobListing) *View {
	return &View{catalog: catalog}
}

// Apply filters the catalog and records the result.
func (v *View) Apply(criteria Criteria) []models.JobListing {
	v.results = Filter(v.catalog, criteria)
	v.filtered = true
	return v.results
}

// Clear resets the view to the full unfiltered catalog.
func (v *View) Clear() {
	v.results = nil
	v.filtered = false
}

// Filtered reports whether a filter is currently applied.
func (v *View) Filtered() bool { return v.filtered }

// Jobs returns what the worker currently sees: the filter results when
// a filter is applied, the full catalog otherwise.
func (v *View) Jobs() []models.JobListing {
	if v.filtered {
		return v.results
	}
	return v.catalog
}
