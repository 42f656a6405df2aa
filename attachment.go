package dhesend

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// Attachment limits enforced before an email is sent.
const (
	// MaxAttachments is the maximum number of attachments per email.
	MaxAttachments = 15
	// MaxAttachmentsSizeMB is the maximum total size of file attachments, in MB.
	MaxAttachmentsSizeMB = 25
	// MaxAttachmentsSize is MaxAttachmentsSizeMB in bytes.
	MaxAttachmentsSize = MaxAttachmentsSizeMB * 1024 * 1024
)

// AttachmentKind tells the two attachment variants apart.
type AttachmentKind int

const (
	// AttachmentFile carries its content inline and is sent as multipart.
	AttachmentFile AttachmentKind = iota + 1
	// AttachmentURL is fetched by the server and travels inside the JSON body.
	AttachmentURL
)

// Attachment is either a FileAttachment or a URLAttachment. All attachments
// of one email must be of the same kind. The interface is sealed.
type Attachment interface {
	Kind() AttachmentKind
	isAttachment()
}

// FileAttachment is an attachment with inline content.
type FileAttachment struct {
	// Filename is the name shown to recipients.
	Filename string
	// Content is the raw file content.
	Content []byte
	// ContentType is optional; it is guessed from Filename when empty.
	ContentType string
}

// Kind implements Attachment.
func (FileAttachment) Kind() AttachmentKind { return AttachmentFile }

func (FileAttachment) isAttachment() {}

// Size returns the content length in bytes.
func (a FileAttachment) Size() int64 {
	return int64(len(a.Content))
}

func (a FileAttachment) contentType() string {
	if a.ContentType != "" {
		return a.ContentType
	}
	return mime.TypeByExtension(filepath.Ext(a.Filename))
}

// NewFileAttachment reads the file at path into a FileAttachment.
func NewFileAttachment(path string) (FileAttachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileAttachment{}, fmt.Errorf("read attachment: %w", err)
	}
	return FileAttachment{
		Filename: filepath.Base(path),
		Content:  content,
	}, nil
}

// URLAttachment references a file the server downloads itself.
type URLAttachment struct {
	// URL of the attachment.
	URL string
	// Filename is optional; the server derives it from URL when empty.
	Filename string
	// ContentType is optional; the server derives it from URL when empty.
	ContentType string
}

// Kind implements Attachment.
func (URLAttachment) Kind() AttachmentKind { return AttachmentURL }

func (URLAttachment) isAttachment() {}

// isNilAttachment reports whether a is nil or a nil pointer variant. Kind
// must not be called on those.
func isNilAttachment(a Attachment) bool {
	switch v := a.(type) {
	case nil:
		return true
	case *FileAttachment:
		return v == nil
	case *URLAttachment:
		return v == nil
	}
	return false
}

// fileAttachment returns a as a FileAttachment when it is one.
func fileAttachment(a Attachment) (FileAttachment, bool) {
	switch v := a.(type) {
	case FileAttachment:
		return v, true
	case *FileAttachment:
		if v != nil {
			return *v, true
		}
	}
	return FileAttachment{}, false
}

// urlAttachment returns a as a URLAttachment when it is one.
func urlAttachment(a Attachment) (URLAttachment, bool) {
	switch v := a.(type) {
	case URLAttachment:
		return v, true
	case *URLAttachment:
		if v != nil {
			return *v, true
		}
	}
	return URLAttachment{}, false
}
