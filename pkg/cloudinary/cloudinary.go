package cloudinary

import (
	"context"
	"fmt"
	"io"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader wraps the Cloudinary client for image hosting
type Uploader struct {
	client *cld.Cloudinary
}

// New initializes the Cloudinary client from a CLOUDINARY_URL-style URL
func New(url string) (*Uploader, error) {
	if url == "" {
		return nil, fmt.Errorf("Cloudinary URL not provided")
	}

	client, err := cld.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("error initializing cloudinary client: %w", err)
	}

	return &Uploader{client: client}, nil
}

// Upload pushes image bytes to Cloudinary and returns the hosted HTTPS URL
func (u *Uploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, r, uploader.UploadParams{})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return resp.SecureURL, nil
}
