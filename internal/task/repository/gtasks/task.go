package gtasks

import (
	"context"
	"fmt"
	"time"

	tasks "google.golang.org/api/tasks/v1"

	"task-portal/internal/model"
	"task-portal/internal/task/repository"
	pkgLog "task-portal/pkg/log"
)

// APITimeout bounds each call to the Google Tasks API.
const APITimeout = 5 * time.Second

type implRepository struct {
	svc    *tasks.Service
	listID string
	l      pkgLog.Logger
}

// New creates a Google Tasks-backed task repository writing into listID.
func New(svc *tasks.Service, listID string, l pkgLog.Logger) repository.TaskRepository {
	if listID == "" {
		listID = DefaultListID
	}
	return &implRepository{svc: svc, listID: listID, l: l}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	in := &tasks.Task{Title: opt.Title}
	if opt.HasDescription() {
		in.Notes = *opt.Description
		if in.Notes == "" {
			// Notes has omitempty; force the empty string onto the wire.
			in.ForceSendFields = []string{"Notes"}
		}
	}

	out, err := r.svc.Tasks.Insert(r.listID, in).Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to insert task: %v", err)
		return model.Task{}, fmt.Errorf("google tasks insert: %w", err)
	}

	updated, _ := time.Parse(time.RFC3339, out.Updated)
	return model.Task{
		ID:          out.Id,
		Title:       out.Title,
		Description: opt.Description,
		URL:         out.WebViewLink,
		CreatedAt:   updated,
	}, nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if _, err := r.svc.Tasklists.Get(r.listID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("google tasks list %s: %w", r.listID, err)
	}
	return nil
}
