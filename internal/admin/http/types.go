package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-7b282/portfolio-backend/internal/admin/service"
	projectsdomain "github.com/portfolio-7b282/portfolio-backend/internal/projects/domain"
)

// projectForm pulls the add/edit project fields out of a multipart form.
// Technologies and features stay raw comma-separated text; splitting
// happens in the write flow.
func projectForm(c *gin.Context) (projectsdomain.FormInput, error) {
	in := projectsdomain.FormInput{
		Title:           strings.TrimSpace(c.PostForm("title")),
		Description:     strings.TrimSpace(c.PostForm("description")),
		FullDescription: c.PostForm("fullDescription"),
		Category:        c.PostForm("category"),
		Technologies:    c.PostForm("technologies"),
		Features:        c.PostForm("features"),
		GithubURL:       strings.TrimSpace(c.PostForm("githubUrl")),
		LiveURL:         strings.TrimSpace(c.PostForm("liveUrl")),
	}

	if in.Title == "" || in.Description == "" || strings.TrimSpace(in.Technologies) == "" {
		return in, errors.New("title, description and technologies are required")
	}
	if !projectsdomain.ValidCategory(in.Category) {
		return in, errors.New("invalid category")
	}
	return in, nil
}

// imageUpload opens the optional "image" form file. The returned closer is
// non-nil whenever the upload is.
func imageUpload(c *gin.Context) (*service.ImageUpload, multipart.File, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}

	return &service.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      f,
	}, f, nil
}
