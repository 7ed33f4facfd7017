package memos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-portal/internal/model"
	"task-portal/internal/task/repository"
	pkgLog "task-portal/pkg/log"
)

const defaultVisibility = "PRIVATE"

type implRepository struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep link generation
	visibility  string
	l           pkgLog.Logger
}

// New creates a Memos-backed task repository.
func New(client *Client, memoBaseURL, visibility string, l pkgLog.Logger) repository.TaskRepository {
	if visibility == "" {
		visibility = defaultVisibility
	}
	return &implRepository{
		client:      client,
		memoBaseURL: memoBaseURL,
		visibility:  visibility,
		l:           l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    r.buildMarkdownContent(opt),
		Visibility: r.visibility,
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create memo: %v", err)
		return model.Task{}, err
	}

	return r.memoToTask(memo, opt), nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// buildMarkdownContent renders the title as a heading. The description
// section exists only when a description was given.
func (r *implRepository) buildMarkdownContent(opt repository.CreateTaskOptions) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(opt.Title)
	if opt.HasDescription() {
		sb.WriteString("\n\n")
		sb.WriteString(*opt.Description)
	}
	return sb.String()
}

// memoToTask converts a Memos API Memo object to the internal model.Task.
func (r *implRepository) memoToTask(m *Memo, opt repository.CreateTaskOptions) model.Task {
	uid := m.UID
	// Name format is "memos/{uid}" from the Memos v1 API
	if uid == "" && m.Name != "" {
		parts := strings.SplitN(m.Name, "/", 2)
		if len(parts) == 2 {
			uid = parts[1]
		}
	}

	memoURL := ""
	if uid != "" && r.memoBaseURL != "" {
		memoURL = fmt.Sprintf("%s/m/%s", r.memoBaseURL, uid)
	}

	createdAt, _ := time.Parse(time.RFC3339, m.CreateTime)

	return model.Task{
		ID:          m.Name,
		Title:       opt.Title,
		Description: opt.Description,
		URL:         memoURL,
		CreatedAt:   createdAt,
	}
}
