package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/render/internal/core/domain"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// upload is a file variable found at a dotted path such as "variables.files.0".
type upload struct {
	path string
	file *domain.Upload
}

// collectUploads finds file variables in document order of their paths.
func collectUploads(variables map[string]any) []upload {
	var found []upload
	walkUploads("variables", variables, &found)
	sort.Slice(found, func(i, j int) bool { return found[i].path < found[j].path })
	return found
}

func walkUploads(path string, value any, found *[]upload) {
	switch v := value.(type) {
	case *domain.Upload:
		if v != nil {
			*found = append(*found, upload{path: path, file: v})
		}
	case domain.Upload:
		*found = append(*found, upload{path: path, file: &v})
	case map[string]any:
		for key, child := range v {
			walkUploads(path+"."+key, child, found)
		}
	case []any:
		for i, child := range v {
			walkUploads(path+"."+strconv.Itoa(i), child, found)
		}
	}
}

// stripUploads returns a copy of value with every file replaced by null.
func stripUploads(value any) any {
	switch v := value.(type) {
	case *domain.Upload, domain.Upload:
		return nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = stripUploads(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = stripUploads(child)
		}
		return out
	default:
		return v
	}
}

// newMultipartRequest builds a request following the GraphQL multipart request format:
// an "operations" part with files nulled out, a "map" part, then one part per file.
func newMultipartRequest(ctx context.Context, uri string, body requestBody, uploads []upload) (*http.Request, error) {
	stripped, _ := stripUploads(body.Variables).(map[string]any)
	body.Variables = stripped

	operations, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	fileMap := make(map[string][]string, len(uploads))
	for i, u := range uploads {
		fileMap[strconv.Itoa(i)] = []string{u.path}
	}
	mapping, err := json.Marshal(fileMap)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if err := w.WriteField("operations", string(operations)); err != nil {
		return nil, err
	}
	if err := w.WriteField("map", string(mapping)); err != nil {
		return nil, err
	}
	for i, u := range uploads {
		if err := writeFile(w, strconv.Itoa(i), u.file); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}

func writeFile(w *multipart.Writer, field string, file *domain.Upload) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(file.Filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	if file.Body == nil {
		return nil
	}
	_, err = io.Copy(part, file.Body)
	return err
}
