// Package search implements the client-side filter and pagination pipeline
// used by the professional directory. The backend returns the full list; all
// narrowing happens here, always from the unfiltered master list so relaxing
// a criterion restores previously excluded records.
package search

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"github.com/Max-glbt/Medi4ll/internal/models"
)

const PageSize = 20

// Filters holds the user-supplied criteria. Zero values mean "no filtering
// on that dimension".
type Filters struct {
	Keyword     string
	City        string
	SpecialtyID int64
	MaxFee      *float64
}

// MaxFeeInput formats the fee ceiling for prefilling the filter form.
func (f Filters) MaxFeeInput() string {
	if f.MaxFee == nil {
		return ""
	}
	return strconv.FormatFloat(*f.MaxFee, 'f', -1, 64)
}

func (f Filters) Active() bool {
	return f.Keyword != "" || f.City != "" || f.SpecialtyID != 0 || f.MaxFee != nil
}

// Fingerprint identifies one combination of criteria. Pager links carry it so
// a changed filter is detected and the page resets to 1.
func (f Filters) Fingerprint() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%d|", strings.ToLower(strings.TrimSpace(f.Keyword)), strings.ToLower(strings.TrimSpace(f.City)), f.SpecialtyID)
	if f.MaxFee != nil {
		fmt.Fprintf(h, "%g", *f.MaxFee)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Apply narrows the master list with every active criterion combined by AND.
// The master list is never mutated; the result is a fresh slice.
func Apply(master []models.Professional, f Filters) []models.Professional {
	results := make([]models.Professional, len(master))
	copy(results, master)

	if keyword := strings.ToLower(strings.TrimSpace(f.Keyword)); keyword != "" {
		results = keep(results, func(p models.Professional) bool { return matchesKeyword(p, keyword) })
	}
	if city := strings.ToLower(strings.TrimSpace(f.City)); city != "" {
		results = keep(results, func(p models.Professional) bool { return matchesCity(p, city) })
	}
	if f.SpecialtyID != 0 {
		results = keep(results, func(p models.Professional) bool { return p.Specialty.ID == f.SpecialtyID })
	}
	if f.MaxFee != nil {
		results = keep(results, func(p models.Professional) bool { return feeAtMost(p.ConsultationFee, *f.MaxFee) })
	}
	return results
}

func keep(items []models.Professional, predicate func(models.Professional) bool) []models.Professional {
	kept := items[:0:0]
	for _, item := range items {
		if predicate(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// The keyword matches on full name, specialty name or any office city. These
// three are combined with OR, unlike the criteria themselves.
func matchesKeyword(p models.Professional, keyword string) bool {
	fullName := strings.ToLower(p.LastName + " " + p.FirstName)
	if strings.Contains(fullName, keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Specialty.Name), keyword) {
		return true
	}
	for _, office := range p.Offices {
		if strings.Contains(strings.ToLower(office.City), keyword) {
			return true
		}
	}
	return false
}

func matchesCity(p models.Professional, city string) bool {
	for _, office := range p.Offices {
		if strings.Contains(strings.ToLower(office.City), city) ||
			strings.Contains(strings.ToLower(office.PostalCode), city) ||
			strings.Contains(strings.ToLower(office.Address), city) {
			return true
		}
	}
	return false
}

// An unparsable fee never satisfies a maximum-fee filter.
func feeAtMost(fee string, maxFee float64) bool {
	value, err := strconv.ParseFloat(strings.TrimSpace(fee), 64)
	if err != nil {
		return false
	}
	return value <= maxFee
}

func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage keeps navigation inside [1, totalPages]; an empty result set
// stays on page 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageSlice selects the contiguous slice for a 1-based page without mutating
// the input.
func PageSlice[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageNumbers builds the compact pager: page 1, the last page, and the
// current page with one neighbor on each side, deduplicated and ascending.
func PageNumbers(totalPages, current int) []int {
	if totalPages < 1 {
		return nil
	}

	seen := map[int]bool{1: true}
	pages := []int{1}
	for i := max(2, current-1); i <= min(totalPages-1, current+1); i++ {
		if !seen[i] {
			seen[i] = true
			pages = append(pages, i)
		}
	}
	if totalPages > 1 && !seen[totalPages] {
		pages = append(pages, totalPages)
	}
	sort.Ints(pages)
	return pages
}
