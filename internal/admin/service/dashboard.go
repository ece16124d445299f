package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	contactsdomain "github.com/portfolio-7b282/portfolio-backend/internal/contacts/domain"
	contactsrepo "github.com/portfolio-7b282/portfolio-backend/internal/contacts/repository"
	projectsdomain "github.com/portfolio-7b282/portfolio-backend/internal/projects/domain"
	projectsrepo "github.com/portfolio-7b282/portfolio-backend/internal/projects/repository"
	"github.com/portfolio-7b282/portfolio-backend/internal/store"
)

var (
	// ErrProjectNotFound is returned by the edit flow when the target
	// project no longer exists.
	ErrProjectNotFound = errors.New("project not found")

	// ErrRefresh marks the case where a mutation was acknowledged but the
	// follow-up refetch failed. The write stuck; callers keep whatever
	// lists they were already showing.
	ErrRefresh = errors.New("refresh after mutation failed")
)

// Overview is the full dashboard dataset: both collections, re-read
// together after every mutation.
type Overview struct {
	Projects []projectsdomain.Project        `json:"projects"`
	Messages []contactsdomain.ContactMessage `json:"messages"`
}

// ImageUpload is an optional image attached to an add/edit submission.
type ImageUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Dashboard orchestrates the admin workflows: refetch-on-mutation, the
// two-step upload-then-write project flows, and the message actions.
type Dashboard struct {
	projects *projectsrepo.Repo
	contacts *contactsrepo.Repo
	objects  store.ObjectStore

	// now is swapped in tests to pin upload key timestamps.
	now func() time.Time
}

func NewDashboard(projects *projectsrepo.Repo, contacts *contactsrepo.Repo, objects store.ObjectStore) *Dashboard {
	return &Dashboard{
		projects: projects,
		contacts: contacts,
		objects:  objects,
		now:      time.Now,
	}
}

// RefreshAll re-reads both collections. Either read failing fails the whole
// refresh; there is no partial merge, and callers keep previously rendered
// data.
func (d *Dashboard) RefreshAll(ctx context.Context) (*Overview, error) {
	projects, err := d.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	messages, err := d.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch contacts: %w", err)
	}

	return &Overview{Projects: projects, Messages: messages}, nil
}

// AddProject runs the add flow: upload the image if one was selected,
// split the comma-separated lists, then create the document with a
// server-assigned creation timestamp. An upload failure aborts the write
// entirely, so no document is ever created with a missing image.
func (d *Dashboard) AddProject(ctx context.Context, in projectsdomain.FormInput, image *ImageUpload) (*Overview, error) {
	imageURL := ""
	if image != nil {
		url, err := d.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	if _, err := d.projects.Create(ctx, projectsdomain.AddFields(in, imageURL)); err != nil {
		return nil, fmt.Errorf("add project: %w", err)
	}

	return d.refreshAfterMutation(ctx)
}

// UpdateProject runs the edit flow: structurally the add flow, except a
// missing image reuses the stored image URL and the write is a full
// overwrite carrying an update timestamp and no creation timestamp.
func (d *Dashboard) UpdateProject(ctx context.Context, id string, in projectsdomain.FormInput, image *ImageUpload) (*Overview, error) {
	existing, err := d.findProject(ctx, id)
	if err != nil {
		return nil, err
	}

	imageURL := existing.Image
	if image != nil {
		url, err := d.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	if err := d.projects.Overwrite(ctx, id, projectsdomain.EditFields(in, imageURL)); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return d.refreshAfterMutation(ctx)
}

// DeleteProject removes one project document, then refetches.
func (d *Dashboard) DeleteProject(ctx context.Context, id string) (*Overview, error) {
	if err := d.projects.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}
	return d.refreshAfterMutation(ctx)
}

// ToggleMessageStatus flips one message between unread and read, then
// refetches. On failure the document is left unchanged.
func (d *Dashboard) ToggleMessageStatus(ctx context.Context, id string) (*Overview, error) {
	if err := d.contacts.ToggleStatus(ctx, id); err != nil {
		return nil, fmt.Errorf("update message status: %w", err)
	}
	return d.refreshAfterMutation(ctx)
}

// DeleteMessage removes one message document, then refetches.
func (d *Dashboard) DeleteMessage(ctx context.Context, id string) (*Overview, error) {
	if err := d.contacts.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete message: %w", err)
	}
	return d.refreshAfterMutation(ctx)
}

// uploadImage stores the file under a timestamp-namespaced key and returns
// the durable download URL.
func (d *Dashboard) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	key := fmt.Sprintf("projects/%d_%s", d.now().UnixMilli(), image.Filename)
	url, err := d.objects.Upload(ctx, key, image.ContentType, image.Reader)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}

func (d *Dashboard) findProject(ctx context.Context, id string) (*projectsdomain.Project, error) {
	projects, err := d.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

// refreshAfterMutation is sequenced strictly after the mutating write was
// acknowledged. A refresh failure is reported as ErrRefresh so callers can
// tell "write lost" apart from "write stuck, lists stale".
func (d *Dashboard) refreshAfterMutation(ctx context.Context) (*Overview, error) {
	overview, err := d.RefreshAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRefresh, err)
	}
	return overview, nil
}
