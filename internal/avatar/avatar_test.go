package avatar_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dashboard/internal/avatar"
)

// pngHeader is enough of a PNG signature for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestStat_ExtensionMediaType(t *testing.T) {
	path := writeFile(t, "me.png", pngHeader)

	f, err := avatar.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MediaType != "image/png" {
		t.Errorf("expected image/png, got %q", f.MediaType)
	}
	if f.Size != int64(len(pngHeader)) {
		t.Errorf("expected size %d, got %d", len(pngHeader), f.Size)
	}
}

func TestStat_TextFile(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("hello"))

	f, err := avatar.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MediaType != "text/plain" {
		t.Errorf("expected text/plain, got %q", f.MediaType)
	}
}

func TestStat_SniffsUnknownExtension(t *testing.T) {
	path := writeFile(t, "avatar.unknownext", pngHeader)

	f, err := avatar.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MediaType != "image/png" {
		t.Errorf("expected sniffed image/png, got %q", f.MediaType)
	}
}

func TestStat_Missing(t *testing.T) {
	_, err := avatar.Stat(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestStat_Directory(t *testing.T) {
	if _, err := avatar.Stat(t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		file avatar.File
		want error
	}{
		{"png", avatar.File{MediaType: "image/png", Size: 1024}, nil},
		{"exactly max", avatar.File{MediaType: "image/jpeg", Size: avatar.MaxUploadSize}, nil},
		{"too large", avatar.File{MediaType: "image/jpeg", Size: avatar.MaxUploadSize + 1}, avatar.ErrTooLarge},
		{"text", avatar.File{MediaType: "text/plain", Size: 10}, avatar.ErrNotImage},
		{"text and large", avatar.File{MediaType: "text/plain", Size: avatar.MaxUploadSize + 1}, avatar.ErrNotImage},
		{"empty type", avatar.File{Size: 10}, avatar.ErrNotImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := avatar.Validate(tt.file); !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEncodeAndIsInline(t *testing.T) {
	got := avatar.Encode("image/png", []byte("abc"))
	want := "data:image/png;base64,YWJj"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !avatar.IsInline(got) {
		t.Error("expected encoded value to be inline")
	}
	if avatar.IsInline("https://example.com/a.png") {
		t.Error("expected URL not to be inline")
	}
}

func TestRead(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 200*1024)
	path := writeFile(t, "big.png", data)

	f, err := avatar.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := avatar.Read(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
	if got != want {
		t.Errorf("encoded value mismatch (len %d vs %d)", len(got), len(want))
	}
}

func TestRead_Cancelled(t *testing.T) {
	path := writeFile(t, "a.png", pngHeader)
	f, err := avatar.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := avatar.Read(ctx, f); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	if got := avatar.Describe(""); got != avatar.Placeholder {
		t.Errorf("expected placeholder, got %q", got)
	}
	if got := avatar.Describe("https://example.com/me.png"); got != "https://example.com/me.png" {
		t.Errorf("expected URL unchanged, got %q", got)
	}
	got := avatar.Describe(avatar.Encode("image/gif", make([]byte, 3000)))
	if !strings.HasPrefix(got, "inline image/gif (2.9 KB") {
		t.Errorf("unexpected description %q", got)
	}
}
