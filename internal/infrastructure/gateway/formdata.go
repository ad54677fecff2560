package gateway

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"

	"skateplan/internal/core/ports"
)

// FormData builds a multipart/form-data payload. Errors are sticky and
// reported by Body.
type FormData struct {
	buf    bytes.Buffer
	w      *multipart.Writer
	err    error
	closed bool
}

func NewFormData() *FormData {
	f := &FormData{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

// Field appends a plain text field.
func (f *FormData) Field(name, value string) *FormData {
	if f.err != nil || f.closed {
		return f
	}
	f.err = f.w.WriteField(name, value)
	return f
}

// File appends a file part read from r.
func (f *FormData) File(field, filename string, r io.Reader) *FormData {
	if f.err != nil || f.closed {
		return f
	}
	part, err := f.w.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = io.Copy(part, r)
	return f
}

// FileFromPath appends the file at path under field.
func (f *FormData) FileFromPath(field, path string) *FormData {
	if f.err != nil {
		return f
	}
	fh, err := os.Open(path)
	if err != nil {
		f.err = err
		return f
	}
	defer fh.Close()
	return f.File(field, filepath.Base(path), fh)
}

// Body closes the writer and returns the encoded payload together with
// its boundary-bearing content type.
func (f *FormData) Body() (ports.MultipartBody, error) {
	if f.err != nil {
		return ports.MultipartBody{}, fmt.Errorf("encode form data: %w", f.err)
	}
	if !f.closed {
		if err := f.w.Close(); err != nil {
			return ports.MultipartBody{}, fmt.Errorf("encode form data: %w", err)
		}
		f.closed = true
	}
	return ports.MultipartBody{
		Payload:     f.buf.Bytes(),
		ContentType: f.w.FormDataContentType(),
	}, nil
}

// EncodeMultipart encodes text fields (in key order) followed by one file
// part. It has the shape services.MultipartEncoder expects.
func EncodeMultipart(fields map[string]string, fileField, filename string, file io.Reader) (ports.MultipartBody, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := NewFormData()
	for _, k := range keys {
		f.Field(k, fields[k])
	}
	if file != nil {
		f.File(fileField, filename, file)
	}
	return f.Body()
}
