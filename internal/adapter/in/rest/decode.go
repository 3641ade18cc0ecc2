package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"yatube/internal/service"
	"yatube/pkg/imagecodec"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgNotString = "Not a valid string."
	msgNull      = "This field may not be null."
)

// rawBody is a request body split into fields but not yet typed. Multipart
// forms are folded into the same shape so serializers see one format.
type rawBody struct {
	fields map[string]json.RawMessage
	files  map[string]*multipart.FileHeader
}

func (b rawBody) has(name string) bool {
	if _, ok := b.fields[name]; ok {
		return true
	}
	_, ok := b.files[name]
	return ok
}

func decodeBody(c *gin.Context) (rawBody, error) {
	body := rawBody{
		fields: make(map[string]json.RawMessage),
		files:  make(map[string]*multipart.FileHeader),
	}

	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		form, err := c.MultipartForm()
		if err != nil {
			return body, fmt.Errorf("%w: Multipart form parse error - %v", service.ErrInvalidRequest, err)
		}
		for k, vs := range form.Value {
			if len(vs) == 0 {
				continue
			}
			raw, _ := json.Marshal(vs[0])
			body.fields[k] = raw
		}
		for k, fs := range form.File {
			if len(fs) > 0 {
				body.files[k] = fs[0]
			}
		}
		return body, nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return body, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(data, &body.fields); err != nil {
		return body, fmt.Errorf("%w: JSON parse error - %v", service.ErrInvalidRequest, err)
	}
	return body, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// stringField returns nil when name is absent. Type problems are recorded in
// verr.
func (b rawBody) stringField(name string, verr *service.ValidationError) *string {
	raw, ok := b.fields[name]
	if !ok {
		return nil
	}
	if isNull(raw) {
		verr.Add(name, msgNull)
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			verr.Add(name, msgNotString)
			return nil
		}
		s = n.String()
	}
	return &s
}

// pkField reads a nullable primary key. set is false when name is absent.
func (b rawBody) pkField(name string, verr *service.ValidationError) (id *int64, set bool) {
	raw, ok := b.fields[name]
	if !ok {
		return nil, false
	}
	if isNull(raw) {
		return nil, true
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		verr.Add(name, msgNotString)
		return nil, true
	}

	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		if t == "" {
			return nil, true
		}
		s = t
	default:
		verr.Add(name, fmt.Sprintf("Incorrect type. Expected pk value, received %s.", jsonTypeName(v)))
		return nil, true
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		verr.Add(name, fmt.Sprintf("Incorrect type. Expected pk value, received %s.", jsonTypeName(v)))
		return nil, true
	}
	return &n, true
}

// imageField accepts a data URI, a multipart file or null. set is false when
// name is absent.
func (b rawBody) imageField(name string, verr *service.ValidationError) (f *imagecodec.File, set bool) {
	if fh, ok := b.files[name]; ok {
		file, err := readUpload(fh)
		if err != nil {
			verr.Add(name, service.MsgNotImage)
			return nil, true
		}
		return &file, true
	}

	raw, ok := b.fields[name]
	if !ok {
		return nil, false
	}
	if isNull(raw) {
		return nil, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		verr.Add(name, service.MsgNotFile)
		return nil, true
	}
	if s == "" {
		return nil, true
	}

	file, isURI, err := imagecodec.Parse(s)
	switch {
	case !isURI:
		verr.Add(name, service.MsgNotFile)
		return nil, true
	case err != nil:
		verr.Add(name, service.MsgNotImage)
		return nil, true
	}
	return &file, true
}

func readUpload(fh *multipart.FileHeader) (imagecodec.File, error) {
	src, err := fh.Open()
	if err != nil {
		return imagecodec.File{}, err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return imagecodec.File{}, err
	}
	if len(content) == 0 {
		return imagecodec.File{}, errors.New("empty upload")
	}
	return imagecodec.File{Name: fh.Filename, Content: content}, nil
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case string:
		return "str"
	case bool:
		return "bool"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	default:
		return strings.ToLower(fmt.Sprintf("%T", v))
	}
}
