package task

// CreateInput is the input for task creation.
// A nil Description means the caller sent none (missing or null); it is
// forwarded as absent. A non-nil Description, even "", is forwarded verbatim.
type CreateInput struct {
	Title       string
	Description *string
}
