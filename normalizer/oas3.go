package normalizer

import "strings"

// oas3Extractor extracts the canonical model from OpenAPI 3.x documents.
type oas3Extractor struct{}

func (oas3Extractor) extract(doc map[string]any, sink *WarningSink) (*CanonicalAPI, error) {
	info := getMap(doc, "info")
	api := &CanonicalAPI{
		Name:        apiName(info),
		Description: getString(info, "description"),
		Version:     getString(info, "version"),
		BaseURL:     oas3BaseURL(doc),
		Auth:        oas3Auth(doc),
		Actions:     []Action{},
	}

	paths := getMap(doc, "paths")
	for _, path := range sortedKeys(paths) {
		item := asMap(paths[path])
		if item == nil {
			continue
		}
		for _, method := range canonicalMethods {
			op := getMap(item, method)
			if op == nil {
				continue
			}
			action, ok := buildAction(method, path, sink, func() Action {
				return oas3Action(path, method, item, op, sink)
			})
			if ok {
				api.Actions = append(api.Actions, action)
			}
		}
	}
	return api, nil
}

// oas3BaseURL resolves the first declared server URL, defaulting to a
// placeholder when the document declares none.
func oas3BaseURL(doc map[string]any) string {
	for _, raw := range getSlice(doc, "servers") {
		if url := getString(asMap(raw), "url"); url != "" {
			return url
		}
	}
	return placeholderBaseURL
}

// oas3Auth resolves the document's security schemes by priority: API key
// first, then HTTP (bearer/basic), then OAuth2. The first match wins; a
// document with no scheme yields the none descriptor. Scheme names are
// scanned in lexicographic order so resolution is deterministic.
func oas3Auth(doc map[string]any) AuthDescriptor {
	schemes := getMap(getMap(doc, "components"), "securitySchemes")
	if len(schemes) == 0 {
		return NoAuth()
	}
	names := sortedKeys(schemes)

	for _, name := range names {
		s := asMap(schemes[name])
		if getString(s, "type") == "apiKey" {
			return AuthDescriptor{
				Type:   AuthTypeAPIKey,
				APIKey: &APIKeyAuth{Name: getString(s, "name"), In: getString(s, "in")},
			}
		}
	}
	for _, name := range names {
		s := asMap(schemes[name])
		if getString(s, "type") == "http" {
			scheme := getString(s, "scheme")
			if scheme == "" {
				scheme = "bearer"
			}
			return AuthDescriptor{Type: AuthTypeBearer, Bearer: &BearerAuth{Scheme: scheme}}
		}
	}
	for _, name := range names {
		s := asMap(schemes[name])
		if getString(s, "type") == "oauth2" {
			return AuthDescriptor{Type: AuthTypeOAuth2, OAuth2: oas3OAuth2(s)}
		}
	}
	return NoAuth()
}

// oas3FlowOrder is the preference order for OAuth2 flow extraction.
var oas3FlowOrder = []string{"authorizationCode", "implicit", "password", "clientCredentials"}

func oas3OAuth2(scheme map[string]any) *OAuth2Auth {
	flows := getMap(scheme, "flows")
	for _, name := range oas3FlowOrder {
		flow := getMap(flows, name)
		if flow == nil {
			continue
		}
		return &OAuth2Auth{
			AuthorizationURL: getString(flow, "authorizationUrl"),
			TokenURL:         getString(flow, "tokenUrl"),
			Scopes:           getStringMap(flow, "scopes"),
		}
	}
	return &OAuth2Auth{}
}

func oas3Action(path, method string, item, op map[string]any, sink *WarningSink) Action {
	slug := actionSlug(getString(op, "operationId"), method, path)
	action := Action{
		Slug:        slug,
		Label:       actionLabel(getString(op, "summary"), slug),
		Description: actionDescription(getString(op, "description"), getString(op, "summary")),
		Method:      strings.ToUpper(method),
		Path:        path,
		Tags:        getStringSlice(op, "tags"),
		Deprecated:  getBool(op, "deprecated"),
	}

	// Path-item parameters apply to every operation; operation parameters
	// follow them.
	for _, raw := range mergedParameters(item, op) {
		p := asMap(raw)
		if p == nil {
			continue
		}
		schema := getMap(p, "schema")
		if schema == nil {
			schema = p
		}
		field := paramField(getString(p, "name"), getBool(p, "required"), schema)
		switch getString(p, "in") {
		case "path":
			field.Required = true
			action.PathParams = append(action.PathParams, field)
		case "query":
			action.QueryParams = append(action.QueryParams, field)
		}
	}

	if body := getMap(op, "requestBody"); body != nil {
		if schema := jsonCompatibleSchema(getMap(body, "content")); schema != nil {
			action.Body = flattenSchema(schema, sink, 0)
		}
	}

	if responses := getMap(op, "responses"); responses != nil {
		for _, code := range successResponseCodes {
			resp := getMap(responses, code)
			if resp == nil {
				continue
			}
			if schema := jsonCompatibleSchema(getMap(resp, "content")); schema != nil {
				action.Response = flattenSchema(schema, sink, 0)
				break
			}
		}
	}

	return finishAction(action)
}
