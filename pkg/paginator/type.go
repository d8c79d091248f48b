package paginator

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page  int   `json:"page" form:"page"`   // Page number (1-indexed)
	Limit int64 `json:"limit" form:"limit"` // Number of items per page
}

// Paginator contains pagination metadata for a query result.
type Paginator struct {
	Total       int64 `json:"total"`        // Total number of items across all pages
	Count       int64 `json:"count"`        // Number of items in current page
	PerPage     int64 `json:"per_page"`     // Number of items per page
	CurrentPage int   `json:"current_page"` // Current page number (1-indexed)
}

// PaginatorResponse is the response format for pagination metadata.
type PaginatorResponse struct {
	Total       int64 `json:"total"`        // Total number of items across all pages
	Count       int64 `json:"count"`        // Number of items in current page
	PerPage     int64 `json:"per_page"`     // Number of items per page
	CurrentPage int   `json:"current_page"` // Current page number (1-indexed)
	TotalPages  int   `json:"total_pages"`  // Total number of pages
	HasNext     bool  `json:"has_next"`     // Whether there is a next page
	HasPrev     bool  `json:"has_prev"`     // Whether there is a previous page
}

// DescriptorKind identifies the role of one pagination control.
type DescriptorKind string

const (
	// KindPrevious is the "go one page back" control.
	KindPrevious DescriptorKind = "previous"
	// KindPage is a direct numbered-page control.
	KindPage DescriptorKind = "page"
	// KindNext is the "go one page forward" control.
	KindNext DescriptorKind = "next"
)

// PageDescriptor is one renderable pagination control: Previous, a page
// number, or Next. Page is the 1-based page the control navigates to. Only
// numbered descriptors can be active; Previous/Next can only be disabled.
type PageDescriptor struct {
	Kind     DescriptorKind `json:"kind"`
	Page     int            `json:"page"`
	Disabled bool           `json:"disabled"`
	Active   bool           `json:"active"`
}
