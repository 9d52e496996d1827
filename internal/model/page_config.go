package model

// Page configuration areas. Each area is one keyed map of page entries
// managed wholesale from the back office.
const (
	AreaProductPages    = "product_pages"
	AreaSolutionPages   = "solution_pages"
	AreaCareerEducation = "career_education"
	AreaCorporateHonors = "corporate_honors"
)

// KnownAreas lists every valid page configuration area.
var KnownAreas = []string{
	AreaProductPages,
	AreaSolutionPages,
	AreaCareerEducation,
	AreaCorporateHonors,
}

// IsKnownArea reports whether area names a managed page configuration map.
func IsKnownArea(area string) bool {
	for _, a := range KnownAreas {
		if a == area {
			return true
		}
	}
	return false
}

// PageEntry is one entry of a page configuration map. Order is a pointer so
// a missing value survives JSON round-trips; entries without an order sort
// after every ordered entry.
type PageEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Order       *int   `json:"order"`
	Enabled     bool   `json:"enabled"`
}

// PageItem is a PageEntry annotated with its map key, as returned by list
// resolution.
type PageItem struct {
	Key string `json:"key"`
	PageEntry
}

// ReplacePageConfigRequest is the payload replacing an area's entire map.
// There is no per-entry patch: the admin submits the whole collection and
// the server swaps it atomically (last write wins).
type ReplacePageConfigRequest struct {
	Entries map[string]PageEntry `json:"entries" binding:"required"`
}
