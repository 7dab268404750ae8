package normalizer

import "strings"

// oas2Extractor extracts the canonical model from Swagger 2.0 documents.
type oas2Extractor struct{}

func (oas2Extractor) extract(doc map[string]any, sink *WarningSink) (*CanonicalAPI, error) {
	info := getMap(doc, "info")
	api := &CanonicalAPI{
		Name:        apiName(info),
		Description: getString(info, "description"),
		Version:     getString(info, "version"),
		BaseURL:     oas2BaseURL(doc),
		Auth:        oas2Auth(doc),
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
				return oas2Action(path, method, item, op, sink)
			})
			if ok {
				api.Actions = append(api.Actions, action)
			}
		}
	}
	return api, nil
}

// oas2BaseURL combines the first declared scheme with host and basePath,
// defaulting the scheme to https and the whole URL to a placeholder when no
// host is declared.
func oas2BaseURL(doc map[string]any) string {
	host := getString(doc, "host")
	if host == "" {
		return placeholderBaseURL
	}
	scheme := "https"
	if schemes := getStringSlice(doc, "schemes"); len(schemes) > 0 {
		scheme = schemes[0]
	}
	return scheme + "://" + host + getString(doc, "basePath")
}

// oas2Auth resolves securityDefinitions by priority: API key first, then
// basic (mapped onto the bearer variant with scheme name "basic"), then
// OAuth2. Scheme names are scanned in lexicographic order so resolution is
// deterministic.
func oas2Auth(doc map[string]any) AuthDescriptor {
	defs := getMap(doc, "securityDefinitions")
	if len(defs) == 0 {
		return NoAuth()
	}
	names := sortedKeys(defs)

	for _, name := range names {
		s := asMap(defs[name])
		if getString(s, "type") == "apiKey" {
			return AuthDescriptor{
				Type:   AuthTypeAPIKey,
				APIKey: &APIKeyAuth{Name: getString(s, "name"), In: getString(s, "in")},
			}
		}
	}
	for _, name := range names {
		s := asMap(defs[name])
		if getString(s, "type") == "basic" {
			return AuthDescriptor{Type: AuthTypeBearer, Bearer: &BearerAuth{Scheme: "basic"}}
		}
	}
	for _, name := range names {
		s := asMap(defs[name])
		if getString(s, "type") == "oauth2" {
			return AuthDescriptor{
				Type: AuthTypeOAuth2,
				OAuth2: &OAuth2Auth{
					AuthorizationURL: getString(s, "authorizationUrl"),
					TokenURL:         getString(s, "tokenUrl"),
					Scopes:           getStringMap(s, "scopes"),
				},
			}
		}
	}
	return NoAuth()
}

func oas2Action(path, method string, item, op map[string]any, sink *WarningSink) Action {
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

	// Swagger 2.0 declares parameter types directly on the parameter object,
	// and carries the request body as an in:body parameter. Form parameters
	// serve as the body fallback when no body parameter exists.
	var formFields []Field
	hasBody := false
	for _, raw := range mergedParameters(item, op) {
		p := asMap(raw)
		if p == nil {
			continue
		}
		name := getString(p, "name")
		required := getBool(p, "required")
		switch getString(p, "in") {
		case "path":
			action.PathParams = append(action.PathParams, paramField(name, true, p))
		case "query":
			action.QueryParams = append(action.QueryParams, paramField(name, required, p))
		case "body":
			if schema := getMap(p, "schema"); schema != nil {
				action.Body = flattenSchema(schema, sink, 0)
				hasBody = true
			}
		case "formData":
			formFields = append(formFields, paramField(name, required, p))
		}
	}
	if !hasBody && len(formFields) > 0 {
		action.Body = formFields
	}

	if responses := getMap(op, "responses"); responses != nil {
		for _, code := range successResponseCodes {
			resp := getMap(responses, code)
			if resp == nil {
				continue
			}
			if schema := getMap(resp, "schema"); schema != nil {
				action.Response = flattenSchema(schema, sink, 0)
				break
			}
		}
	}

	return finishAction(action)
}
