package profile

import (
	"context"

	"github.com/google/uuid"

	"dashboard/internal/avatar"
)

// AvatarSource records where the working copy's avatar came from.
// It is either URLSource or UploadSource; nil means unchanged.
type AvatarSource interface {
	avatarSource()
}

// URLSource is an avatar typed as a URL.
type URLSource struct {
	URL string
}

// UploadState is the progress of an uploaded avatar.
type UploadState int

const (
	UploadPending UploadState = iota
	UploadReady
)

// UploadSource is an avatar read from a file.
// DataURL is set once State is UploadReady.
type UploadSource struct {
	ID      uuid.UUID
	File    avatar.File
	State   UploadState
	DataURL string
}

func (URLSource) avatarSource()    {}
func (UploadSource) avatarSource() {}

// Upload is a file read the caller must perform and report back through
// Editor.CompleteUpload. Ctx is cancelled when the editor no longer wants
// the result.
type Upload struct {
	ID     uuid.UUID
	UserID int
	File   avatar.File
	Ctx    context.Context
}

// Read performs the upload's file read.
func (u Upload) Read() (string, error) {
	return avatar.Read(u.Ctx, u.File)
}

// BeginUpload validates f and starts a pending upload. Invalid files return
// avatar.ErrNotImage or avatar.ErrTooLarge and leave the editor unchanged.
// Starting an upload abandons any earlier one.
func (e *Editor) BeginUpload(ctx context.Context, f avatar.File) (Upload, error) {
	if e.mode != Editing {
		return Upload{}, ErrNotEditing
	}
	if err := avatar.Validate(f); err != nil {
		return Upload{}, err
	}

	e.stopUpload()
	readCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	id := uuid.New()
	e.source = UploadSource{ID: id, File: f, State: UploadPending}
	return Upload{ID: id, UserID: e.original.ID, File: f, Ctx: readCtx}, nil
}

// CompleteUpload applies the result of an upload read. The result is applied
// only while the same edit session is open and the upload is still the
// pending one; otherwise it is dropped. A failed read clears the pending
// upload and leaves the working copy unchanged. It reports whether the
// working copy changed.
func (e *Editor) CompleteUpload(up Upload, dataURL string, readErr error) bool {
	if e.mode != Editing || up.UserID != e.original.ID {
		return false
	}
	src, ok := e.source.(UploadSource)
	if !ok || src.ID != up.ID || src.State != UploadPending {
		return false
	}

	e.stopUpload()
	if readErr != nil {
		e.source = nil
		return false
	}

	src.State = UploadReady
	src.DataURL = dataURL
	e.source = src
	e.form.Avatar = dataURL
	e.preview = dataURL
	return true
}

// Pending reports whether an upload read is outstanding.
func (e *Editor) Pending() bool {
	src, ok := e.source.(UploadSource)
	return ok && src.State == UploadPending
}
