package paginator

// IsValidPage reports whether page is navigable: 1-based and within the total
// page count derived from totalItems and perPage. When totalItems is zero there
// are zero pages and no page is valid, so a control bar over an empty result
// set disables all navigation.
func IsValidPage(page int, totalItems, perPage int64) bool {
	if page < 1 {
		return false
	}
	totalPages := Paginator{Total: totalItems, PerPage: perPage}.TotalPages()
	return page <= totalPages
}

// Dispatch invokes fn with target exactly once if target is a valid page, and
// is a silent no-op otherwise. Out-of-range navigation (clicking "Previous" on
// page 1) is an expected UI event, not a fault, so no error is surfaced.
// Returns whether fn was invoked.
func Dispatch(target int, totalItems, perPage int64, fn func(page int)) bool {
	if !IsValidPage(target, totalItems, perPage) {
		return false
	}
	fn(target)
	return true
}

// BuildPageDescriptors produces the ordered pagination controls for the
// current view: one Previous descriptor, one numbered descriptor per page in
// ascending order, and one Next descriptor.
//
// Previous targets currentPage-1 and is disabled on the first page. Numbered
// descriptors are never disabled; the one equal to currentPage is active.
// Next targets currentPage+1 and is disabled on the last page. With zero total
// pages the numbered range is empty and both Previous and Next are emitted
// disabled (currentPage is 1 and there is nowhere to go).
func BuildPageDescriptors(currentPage int, totalItems, perPage int64) []PageDescriptor {
	totalPages := Paginator{Total: totalItems, PerPage: perPage}.TotalPages()

	descriptors := make([]PageDescriptor, 0, totalPages+2)
	descriptors = append(descriptors, PageDescriptor{
		Kind:     KindPrevious,
		Page:     currentPage - 1,
		Disabled: currentPage == 1,
	})
	for page := 1; page <= totalPages; page++ {
		descriptors = append(descriptors, PageDescriptor{
			Kind:   KindPage,
			Page:   page,
			Active: page == currentPage,
		})
	}
	descriptors = append(descriptors, PageDescriptor{
		Kind:     KindNext,
		Page:     currentPage + 1,
		Disabled: currentPage >= totalPages,
	})
	return descriptors
}
