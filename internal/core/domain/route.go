package domain

import (
	"net/url"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Page is a declared route of the store.
type Page struct {
	// Path is a template such as "/:slug/p" or "page/:id".
	Path string
}

// Pages maps page names to their declarations.
type Pages map[string]Page

// BuildPath fills the template of the named page with params.
func (p Pages) BuildPath(name string, params map[string]string) (string, error) {
	page, ok := p[name]
	if !ok {
		return "", zerr.With(zerr.Wrap(ErrPageNotFound, "cannot build path"), "page", name)
	}

	segments := splitPath(page.Path)
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if key, isParam := strings.CutPrefix(seg, ":"); isParam {
			value, ok := params[key]
			if !ok || value == "" {
				return "", zerr.With(zerr.Wrap(ErrMissingRouteParam, "cannot build path"), "param", key)
			}
			out = append(out, url.PathEscape(value))
			continue
		}
		out = append(out, seg)
	}

	return "/" + strings.Join(out, "/"), nil
}

// Match finds the page whose template matches pathname.
// Pages are tried in name order so that the result is deterministic.
func (p Pages) Match(pathname string) (string, map[string]string, bool) {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	target := splitPath(pathname)
	for _, name := range names {
		if params, ok := matchSegments(splitPath(p[name].Path), target); ok {
			return name, params, true
		}
	}
	return "", nil, false
}

func matchSegments(template, target []string) (map[string]string, bool) {
	if len(template) != len(target) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range template {
		if key, isParam := strings.CutPrefix(seg, ":"); isParam {
			value, err := url.PathUnescape(target[i])
			if err != nil || value == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[key] = value
			continue
		}
		if seg != target[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
