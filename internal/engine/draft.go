package engine

// Draft is an unvalidated entry as received from a caller. Pointer and nil
// slice fields record whether the caller supplied a value of the right JSON
// type, so Register can report type errors in its own check order.
type Draft struct {
	Name string // empty when absent or not a string
	Type string // empty when absent or not a string

	// CookTime is nil when absent or not a number.
	CookTime *float64

	// RequiredItems is nil when absent or not an array. An empty array is
	// a non-nil, zero-length slice.
	RequiredItems []DraftItem
}

// DraftItem is an unvalidated required item.
type DraftItem struct {
	Name     *string  // nil when absent or not a string
	Quantity *float64 // nil when absent or not a number
}
