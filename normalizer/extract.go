package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// placeholderBaseURL is used when a document declares no server or host.
const placeholderBaseURL = "http://localhost"

// canonicalMethods is the fixed, ordered set of HTTP methods considered
// during extraction. The order is part of the canonical model's contract:
// actions are emitted path by path, method by method, in this order.
var canonicalMethods = []string{"get", "post", "put", "patch", "delete"}

// extractor converts one validated document dialect into the canonical model.
// Implementations share the field flattener and its type-mapping rule; the
// normalizer selects the implementation by dialect detection.
type extractor interface {
	extract(doc map[string]any, sink *WarningSink) (*CanonicalAPI, error)
}

var titleCaser = cases.Title(language.English)

// slugify lowers s and collapses every run of non-alphanumeric characters to
// a single hyphen, stripping leading and trailing hyphens.
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// actionSlug derives an action's slug from its operation identifier, or
// synthesizes one from method and path when no identifier is declared.
func actionSlug(operationID, method, path string) string {
	if operationID != "" {
		if slug := slugify(operationID); slug != "" {
			return slug
		}
	}
	return slugify(method + " " + path)
}

// labelFromSlug turns a slug into a display label by title-casing its words.
func labelFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// labelForKey turns a schema property key into a display label, splitting
// camelCase, snake_case, and kebab-case words before title-casing.
func labelForKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	prev := rune(0)
	for _, r := range key {
		switch {
		case r == '_' || r == '-' || r == ' ':
			r = ' '
		case unicode.IsUpper(r) && prev != 0 && !unicode.IsUpper(prev) && prev != ' ':
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return titleCaser.String(b.String())
}

// actionLabel derives an action's display label from its summary, falling
// back to the title-cased slug.
func actionLabel(summary, slug string) string {
	if summary != "" {
		return summary
	}
	return labelFromSlug(slug)
}

// actionDescription prefers the operation description over its summary.
func actionDescription(description, summary string) string {
	if description != "" {
		return description
	}
	return summary
}

// paramField builds a Field from a parameter's name, required flag, and its
// schema node. The schema may be the parameter itself (Swagger 2.0 declares
// type directly on the parameter) or a nested schema object.
func paramField(name string, required bool, schema map[string]any) Field {
	field := schemaField(name, schema)
	field.Required = required
	return field
}

// jsonCompatibleSchema picks the first JSON-compatible media type from a
// content map and returns its schema: an exact application/json entry first,
// then any media type mentioning json, then the form-encoded fallback.
func jsonCompatibleSchema(content map[string]any) map[string]any {
	if content == nil {
		return nil
	}
	if media := getMap(content, "application/json"); media != nil {
		return getMap(media, "schema")
	}
	for _, key := range sortedKeys(content) {
		if strings.Contains(strings.ToLower(key), "json") {
			return getMap(asMap(content[key]), "schema")
		}
	}
	if media := getMap(content, "application/x-www-form-urlencoded"); media != nil {
		return getMap(media, "schema")
	}
	return nil
}

// successResponseCodes is the ordered set of response entries considered when
// resolving an action's response schema.
var successResponseCodes = []string{"200", "201", "2XX"}

// apiName resolves the API title, defaulting when the document declares none.
func apiName(info map[string]any) string {
	if title := getString(info, "title"); title != "" {
		return title
	}
	return "Untitled API"
}

// mergedParameters returns the path-item-level parameters followed by the
// operation-level parameters, in a fresh slice.
func mergedParameters(item, op map[string]any) []any {
	itemParams := getSlice(item, "parameters")
	opParams := getSlice(op, "parameters")
	merged := make([]any, 0, len(itemParams)+len(opParams))
	merged = append(merged, itemParams...)
	merged = append(merged, opParams...)
	return merged
}

// buildAction runs one operation's extraction with panic recovery. A failure
// is recorded on the sink, identifying the method and path, and the action is
// omitted: one malformed operation never aborts the whole document.
func buildAction(method, path string, sink *WarningSink, build func() Action) (action Action, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			sink.Addf("failed to extract %s %s: %v", strings.ToUpper(method), path, r)
			ok = false
		}
	}()
	return build(), true
}

// finishAction normalizes an action's collections so the canonical model
// serializes with empty lists rather than nulls.
func finishAction(action Action) Action {
	if action.PathParams == nil {
		action.PathParams = []Field{}
	}
	if action.QueryParams == nil {
		action.QueryParams = []Field{}
	}
	if action.Body == nil {
		action.Body = []Field{}
	}
	if action.Response == nil {
		action.Response = []Field{}
	}
	return action
}
