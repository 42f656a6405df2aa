package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Body is an encoded request body together with its content type.
type Body struct {
	contentType string
	data        []byte
}

// ContentType returns the Content-Type header value for the body.
func (b *Body) ContentType() string {
	return b.contentType
}

// Bytes returns the encoded body.
func (b *Body) Bytes() []byte {
	return b.data
}

// IsMultipart reports whether the body is multipart/form-data.
func (b *Body) IsMultipart() bool {
	return strings.HasPrefix(b.contentType, "multipart/form-data")
}

func (b *Body) reader() io.Reader {
	return bytes.NewReader(b.data)
}

// JSON encodes v as an application/json body.
func JSON(v any) (*Body, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return &Body{contentType: "application/json", data: data}, nil
}

// Form builds a multipart/form-data body. The first write error sticks and
// is reported by Body.
type Form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

// NewForm returns an empty form.
func NewForm() *Form {
	f := &Form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

// Field appends a plain text field.
func (f *Form) Field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.w.WriteField(name, value)
}

// JSONField appends v as a JSON-encoded text field.
func (f *Form) JSONField(name string, v any) {
	if f.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		f.err = fmt.Errorf("marshal form field %s: %w", name, err)
		return
	}
	f.err = f.w.WriteField(name, string(data))
}

// File appends a binary part.
func (f *Form) File(name, filename, contentType string, content []byte) {
	if f.err != nil {
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(name), escapeQuotes(filename)))
	h.Set("Content-Type", contentType)

	part, err := f.w.CreatePart(h)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = part.Write(content)
}

// Body closes the form and returns the encoded body.
func (f *Form) Body() (*Body, error) {
	if f.err != nil {
		return nil, fmt.Errorf("build form: %w", f.err)
	}
	if err := f.w.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}
	return &Body{contentType: f.w.FormDataContentType(), data: f.buf.Bytes()}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
