package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/mozillazg/go-unidecode"
	"github.com/sbilibin2017/site-content-api/internal/logger"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

// ImagesDir is the subdirectory of the uploads root that receives images.
const ImagesDir = "images"

// ImagesURLPrefix is the public path under which stored images are served.
const ImagesURLPrefix = "/uploads/images/"

var (
	ErrNoFile        = errors.New("no file provided")
	ErrEmptyFilename = errors.New("no file selected")
	ErrUnsafePath    = errors.New("path escapes upload directory")
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// maxFilenameLen bounds the sanitized part of a stored name.
const maxFilenameLen = 128

// UploadService stores uploaded images on local disk.
type UploadService struct {
	dir string
}

// NewUploadService stores files under <root>/images.
func NewUploadService(root string) *UploadService {
	return &UploadService{dir: filepath.Join(root, ImagesDir)}
}

// Dir returns the directory images are written to.
func (s *UploadService) Dir() string {
	return s.dir
}

// Save writes r under a collision-resistant name derived from filename.
func (s *UploadService) Save(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	if r == nil {
		return nil, ErrNoFile
	}
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	name := uuid.NewString() + "_" + SecureFilename(filename)
	path, err := safeJoin(s.dir, name)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("writing file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("closing file: %w", err)
	}

	logger.Log.Infow("file uploaded", "original", filename, "stored", name)

	return &models.UploadResult{
		Filename: name,
		URL:      ImagesURLPrefix + name,
	}, nil
}

// SecureFilename reduces a client supplied name to a flat ASCII name with no
// directory components. "../../etc/passwd.jpg" becomes "etc_passwd.jpg".
func SecureFilename(name string) string {
	name = unidecode.Unidecode(name)
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if len(name) > maxFilenameLen {
		ext := filepath.Ext(name)
		if len(ext) >= maxFilenameLen {
			ext = ""
		}
		name = name[:maxFilenameLen-len(ext)] + ext
	}
	if name == "" {
		return "upload"
	}
	return name
}

// safeJoin joins name to base and rejects results outside base.
func safeJoin(base, name string) (string, error) {
	absBase, err := filepath.Abs(filepath.Clean(base))
	if err != nil {
		return "", err
	}
	full, err := filepath.Abs(filepath.Join(absBase, name))
	if err != nil {
		return "", err
	}
	if filepath.Dir(full) != absBase {
		return "", ErrUnsafePath
	}
	return full, nil
}
