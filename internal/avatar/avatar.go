// Package avatar handles profile picture input: validating selected image
// files and encoding them as inline data values.
package avatar

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxUploadSize is the largest accepted image file (5 MiB).
	MaxUploadSize = 5 * 1024 * 1024

	// Placeholder is shown when a profile has no avatar.
	Placeholder = "/placeholder.svg"

	inlinePrefix = "data:"
	sniffLen     = 512
	readChunk    = 64 * 1024
)

var (
	// ErrNotImage is returned when the selected file is not an image.
	ErrNotImage = errors.New("please select an image file")

	// ErrTooLarge is returned when the selected file exceeds MaxUploadSize.
	ErrTooLarge = errors.New("file size must be less than 5MB")
)

// File describes a selected file before its contents are read.
type File struct {
	Path      string
	MediaType string
	Size      int64
}

// Stat describes the file at path. The media type comes from the file
// extension, or from the first bytes of the file if the extension is unknown.
func Stat(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("not a file: %s", path)
	}

	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mediaType == "" {
		mediaType, err = sniff(path)
		if err != nil {
			return File{}, err
		}
	}
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = mt
	}

	return File{Path: path, MediaType: mediaType, Size: info.Size()}, nil
}

func sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return http.DetectContentType(buf[:n]), nil
}

// Validate checks the declared media type and size of f.
func Validate(f File) error {
	if !strings.HasPrefix(f.MediaType, "image/") {
		return ErrNotImage
	}
	if f.Size > MaxUploadSize {
		return ErrTooLarge
	}
	return nil
}

// Encode returns data as an inline data value of the given media type.
func Encode(mediaType string, data []byte) string {
	return inlinePrefix + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsInline reports whether s is an inline data value rather than a URL.
func IsInline(s string) bool {
	return strings.HasPrefix(s, inlinePrefix)
}

// Read reads the whole file and returns it as an inline data value.
// The read stops early if ctx is cancelled.
func Read(ctx context.Context, f File) (string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", f.Path, err)
	}
	defer fh.Close()

	var data []byte
	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := fh.Read(buf)
		data = append(data, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", f.Path, err)
		}
	}

	return Encode(f.MediaType, data), nil
}

// Describe returns a short human-readable form of an avatar value. Inline
// values are summarized by media type and decoded size.
func Describe(value string) string {
	if value == "" {
		return Placeholder
	}
	if !IsInline(value) {
		return value
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(value, inlinePrefix), ",")
	if !ok {
		return "inline image"
	}
	mediaType, _, _ := strings.Cut(meta, ";")
	size := base64.StdEncoding.DecodedLen(len(payload))
	return fmt.Sprintf("inline %s (%s)", mediaType, humanSize(size))
}

func humanSize(n int) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
