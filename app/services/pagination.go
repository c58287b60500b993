package services

// PageSize is the fixed page length used by every listing.
const PageSize = 10

// Page is one slice of an ordered post listing.
type Page struct {
	Items      []*PostCard
	Number     int
	TotalPages int
	HasNext    bool
	HasPrev    bool
	TotalItems int
}

// paginate slices cards into a fixed-size page. Out-of-range page
// numbers clamp to the nearest valid page instead of failing; an empty
// listing yields a single empty page 1.
func paginate(cards []*PostCard, pageSize, pageNumber int) *Page {
	if pageSize < 1 {
		pageSize = PageSize
	}

	totalPages := (len(cards) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(cards) {
		start = len(cards)
	}
	if end > len(cards) {
		end = len(cards)
	}

	return &Page{
		Items:      cards[start:end],
		Number:     pageNumber,
		TotalPages: totalPages,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
		TotalItems: len(cards),
	}
}
