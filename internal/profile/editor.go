// Package profile implements the profile editor: a two-state machine
// (viewing, editing) over a working copy of the user record, with an
// avatar that comes either from a typed URL or from an uploaded file.
package profile

import (
	"context"
	"errors"

	"dashboard/internal/avatar"
	"dashboard/internal/dashboard"
)

// Mode is the editor state.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

// UploadMethod selects how a new avatar is entered.
type UploadMethod int

const (
	MethodURL UploadMethod = iota
	MethodUpload
)

func (m UploadMethod) String() string {
	if m == MethodUpload {
		return "upload"
	}
	return "url"
}

// ErrNotEditing is returned by operations that need an open edit session.
var ErrNotEditing = errors.New("profile is not being edited")

// Form is the editor's working copy of the user fields.
type Form struct {
	Name   string
	Email  string
	Avatar string
}

// Editor holds the local state of the profile card.
// The zero value is a viewing editor.
type Editor struct {
	mode     Mode
	original dashboard.User
	form     Form
	method   UploadMethod
	source   AvatarSource
	preview  string
	cancel   context.CancelFunc
}

// New returns an editor in the viewing state.
func New() *Editor {
	return &Editor{}
}

func (e *Editor) Mode() Mode               { return e.mode }
func (e *Editor) Editing() bool            { return e.mode == Editing }
func (e *Editor) Form() Form               { return e.form }
func (e *Editor) Method() UploadMethod     { return e.method }
func (e *Editor) Source() AvatarSource     { return e.source }
func (e *Editor) Preview() string          { return e.preview }
func (e *Editor) HasPreview() bool         { return e.preview != "" }
func (e *Editor) Original() dashboard.User { return e.original }

// Begin enters editing with a working copy of user.
func (e *Editor) Begin(user dashboard.User) {
	e.stopUpload()
	e.mode = Editing
	e.original = user
	e.form = formFrom(user)
	e.method = MethodURL
	e.source = nil
	e.preview = ""
}

// Merged returns the user record with the working copy merged in while
// staying in editing. The id is always taken from the user editing began
// with. ok is false if the editor is not editing.
func (e *Editor) Merged() (user dashboard.User, ok bool) {
	if e.mode != Editing {
		return dashboard.User{}, false
	}
	user = e.original
	user.Name = e.form.Name
	user.Email = e.form.Email
	user.Avatar = e.form.Avatar
	return user, true
}

// Save leaves editing and returns the merged user record.
// ok is false if the editor was not editing.
func (e *Editor) Save() (user dashboard.User, ok bool) {
	user, ok = e.Merged()
	if !ok {
		return dashboard.User{}, false
	}

	e.stopUpload()
	e.mode = Viewing
	e.original = user
	e.form = formFrom(user)
	e.method = MethodURL
	e.source = nil
	e.preview = ""
	return user, true
}

// Cancel leaves editing and discards the working copy.
func (e *Editor) Cancel() {
	e.stopUpload()
	e.mode = Viewing
	e.form = formFrom(e.original)
	e.method = MethodURL
	e.source = nil
	e.preview = ""
}

func (e *Editor) SetName(name string) {
	if e.mode == Editing {
		e.form.Name = name
	}
}

func (e *Editor) SetEmail(email string) {
	if e.mode == Editing {
		e.form.Email = email
	}
}

// SelectMethod switches between URL entry and file upload.
func (e *Editor) SelectMethod(m UploadMethod) {
	if e.mode == Editing {
		e.method = m
	}
}

// SetAvatarURL sets the avatar to a typed URL and previews it.
// A pending upload is abandoned.
func (e *Editor) SetAvatarURL(url string) {
	if e.mode != Editing {
		return
	}
	e.stopUpload()
	e.form.Avatar = url
	e.preview = url
	e.source = URLSource{URL: url}
}

// URLFieldValue is the text shown in the URL field. Inline image data is
// never shown there.
func (e *Editor) URLFieldValue() string {
	if avatar.IsInline(e.form.Avatar) {
		return ""
	}
	return e.form.Avatar
}

// DisplayAvatar is the avatar the editing view shows: the preview, then the
// working copy, then the placeholder.
func (e *Editor) DisplayAvatar() string {
	if e.preview != "" {
		return e.preview
	}
	if e.form.Avatar != "" {
		return e.form.Avatar
	}
	return avatar.Placeholder
}

// Initials of the working copy's name.
func (e *Editor) Initials() string {
	return dashboard.Initials(e.form.Name)
}

// ResetPreview drops the active preview and restores the avatar the edit
// session started with. It reports whether a preview was active.
func (e *Editor) ResetPreview() bool {
	if e.mode != Editing || e.preview == "" {
		return false
	}
	e.stopUpload()
	e.preview = ""
	e.form.Avatar = e.original.Avatar
	e.source = nil
	return true
}

func (e *Editor) stopUpload() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func formFrom(u dashboard.User) Form {
	return Form{Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}
