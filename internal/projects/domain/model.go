package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/portfolio-7b282/portfolio-backend/internal/store"
)

// Project categories. The store only ever holds one of these.
const (
	CategoryWeb    = "web"
	CategoryAI     = "ai"
	CategoryMobile = "mobile"
	CategoryOther  = "other"
)

var ErrMalformedDocument = errors.New("malformed project document")

// Project is one portfolio item. JSON names match the fields the frontend
// reads straight out of the store.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription,omitempty"`
	Category        string    `json:"category"`
	Technologies    []string  `json:"technologies"`
	Features        []string  `json:"features,omitempty"`
	GithubURL       string    `json:"githubUrl,omitempty"`
	LiveURL         string    `json:"liveUrl,omitempty"`
	Image           string    `json:"image,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitzero"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryWeb, CategoryAI, CategoryMobile, CategoryOther:
		return true
	}
	return false
}

// FormInput is the raw add/edit form: technologies and features arrive as
// comma-separated text and are split on write.
type FormInput struct {
	Title           string
	Description     string
	FullDescription string
	Category        string
	Technologies    string
	Features        string
	GithubURL       string
	LiveURL         string
}

// SplitList turns comma-separated text into an ordered list, trimming each
// segment. Empty segments are kept verbatim, so a trailing comma yields an
// empty-string entry. This mirrors what the site has always stored.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// AddFields builds the document payload for the add flow: a server-assigned
// creation timestamp and no update timestamp.
func AddFields(in FormInput, imageURL string) map[string]interface{} {
	fields := baseFields(in, imageURL)
	fields["createdAt"] = store.ServerTimestamp
	return fields
}

// EditFields builds the document payload for the edit flow: a full
// overwrite carrying a server-assigned update timestamp and no creation
// timestamp.
func EditFields(in FormInput, imageURL string) map[string]interface{} {
	fields := baseFields(in, imageURL)
	fields["updatedAt"] = store.ServerTimestamp
	return fields
}

func baseFields(in FormInput, imageURL string) map[string]interface{} {
	return map[string]interface{}{
		"title":           in.Title,
		"description":     in.Description,
		"fullDescription": in.FullDescription,
		"category":        in.Category,
		"technologies":    SplitList(in.Technologies),
		"features":        SplitList(in.Features),
		"githubUrl":       in.GithubURL,
		"liveUrl":         in.LiveURL,
		"image":           imageURL,
	}
}

// Decode shapes a raw store document into a Project. Documents missing a
// title or carrying an unknown category are reported as malformed instead
// of leaking untyped data upward.
func Decode(doc store.Document) (Project, error) {
	title := store.AsString(doc.Fields, "title")
	if title == "" {
		return Project{}, fmt.Errorf("%w: %s has no title", ErrMalformedDocument, doc.ID)
	}

	category := store.AsString(doc.Fields, "category")
	if !ValidCategory(category) {
		return Project{}, fmt.Errorf("%w: %s has category %q", ErrMalformedDocument, doc.ID, category)
	}

	return Project{
		ID:              doc.ID,
		Title:           title,
		Description:     store.AsString(doc.Fields, "description"),
		FullDescription: store.AsString(doc.Fields, "fullDescription"),
		Category:        category,
		Technologies:    store.AsStringSlice(doc.Fields, "technologies"),
		Features:        store.AsStringSlice(doc.Fields, "features"),
		GithubURL:       store.AsString(doc.Fields, "githubUrl"),
		LiveURL:         store.AsString(doc.Fields, "liveUrl"),
		Image:           store.AsString(doc.Fields, "image"),
		CreatedAt:       store.AsTime(doc.Fields, "createdAt"),
		UpdatedAt:       store.AsTime(doc.Fields, "updatedAt"),
	}, nil
}
