package repository

// CreateTaskOptions holds the parameters for creating a task in a store.
type CreateTaskOptions struct {
	Title       string
	Description *string // nil: do not send a description at all
}

// HasDescription reports whether a description should be sent to the store.
func (o CreateTaskOptions) HasDescription() bool {
	return o.Description != nil
}
