package models

// ListOptions carries pagination for list queries. Zero Limit means the
// adapter's default page size.
type ListOptions struct {
	Limit int
	Skip  int
}

// DefaultPageSize bounds unpaginated list queries.
const DefaultPageSize = 50

// Normalize returns options with the default limit applied.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultPageSize
	}
	if o.Skip < 0 {
		o.Skip = 0
	}
	return o
}
