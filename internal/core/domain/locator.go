package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// typenameSegments is vendor, app, major, minor, patch and at least one type segment.
const typenameSegments = 6

func buildCacheID(vendor, app, major, typ, cacheID string) string {
	return vendor + "." + app + "@" + major + ".x:" + typ + ":" + cacheID
}

// DataIDFromObject computes the global cache identity of a response object.
//
// Objects need a non-empty cacheId and a __typename shaped like
// vendor_app_major_minor_patch_Type. Anything else has no identity and is cached
// by its query path instead.
func DataIDFromObject(value map[string]any) (string, bool) {
	if value == nil {
		return "", false
	}

	typename, _ := value["__typename"].(string)
	cacheID := scalarString(value["cacheId"])
	if typename == "" || cacheID == "" {
		return "", false
	}

	parts := strings.Split(typename, "_")
	if len(parts) < typenameSegments {
		return "", false
	}

	vendor, app, major := parts[0], parts[1], parts[2]
	typ := strings.Join(parts[5:], "_")
	return buildCacheID(vendor, app, major, typ, cacheID), true
}

// BuildCacheLocator addresses a cached object of an app without knowing its GraphQL type name.
// app is an identifier such as "vtex.store-graphql@2.x"; hyphens are dropped because type
// names cannot carry them.
func BuildCacheLocator(app, typ, cacheID string) (string, error) {
	vendor, rest, ok := strings.Cut(strings.ReplaceAll(app, "-", ""), ".")
	if !ok || vendor == "" {
		return "", zerr.With(ErrInvalidAppLocator, "app", app)
	}

	// "storegraphql@2.x" splits on the first dot, leaving "storegraphql@2".
	appAndMajor, _, _ := strings.Cut(rest, ".")
	name, major, ok := strings.Cut(appAndMajor, "@")
	if !ok || name == "" || major == "" {
		return "", zerr.With(ErrInvalidAppLocator, "app", app)
	}

	return buildCacheID(vendor, name, major, typ, cacheID), nil
}

func scalarString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
