package normalizer

// AuthType enumerates the supported authentication scheme kinds.
type AuthType string

const (
	// AuthTypeAPIKey indicates API-key authentication via a header or query parameter
	AuthTypeAPIKey AuthType = "apiKey"
	// AuthTypeBearer indicates HTTP authentication (bearer token or basic credentials)
	AuthTypeBearer AuthType = "bearer"
	// AuthTypeOAuth2 indicates OAuth 2.0 authentication
	AuthTypeOAuth2 AuthType = "oauth2"
	// AuthTypeNone indicates the document declares no security scheme
	AuthTypeNone AuthType = "none"
)

// APIKeyAuth carries the configuration for an API-key scheme.
type APIKeyAuth struct {
	// Name is the header or query parameter name carrying the key
	Name string `json:"name"`
	// In is the key location: "header" or "query"
	In string `json:"in"`
}

// BearerAuth carries the configuration for an HTTP authentication scheme.
// Swagger 2.0 "basic" auth maps onto this variant with Scheme set to "basic"
// for model uniformity.
type BearerAuth struct {
	// Scheme is the HTTP auth scheme name (e.g., "bearer", "basic")
	Scheme string `json:"scheme"`
}

// OAuth2Auth carries the configuration for an OAuth 2.0 scheme.
type OAuth2Auth struct {
	// AuthorizationURL is the authorization endpoint, if the flow declares one
	AuthorizationURL string `json:"authorizationUrl,omitempty"`
	// TokenURL is the token endpoint, if the flow declares one
	TokenURL string `json:"tokenUrl,omitempty"`
	// Scopes maps scope names to their descriptions
	Scopes map[string]string `json:"scopes,omitempty"`
}

// AuthDescriptor is a tagged union over the supported authentication scheme
// kinds. Exactly one variant pointer is non-nil, matching Type; for
// AuthTypeNone all variants are nil.
type AuthDescriptor struct {
	// Type discriminates which variant is active
	Type AuthType `json:"type"`
	// APIKey is set when Type is AuthTypeAPIKey
	APIKey *APIKeyAuth `json:"apiKey,omitempty"`
	// Bearer is set when Type is AuthTypeBearer
	Bearer *BearerAuth `json:"bearer,omitempty"`
	// OAuth2 is set when Type is AuthTypeOAuth2
	OAuth2 *OAuth2Auth `json:"oauth2,omitempty"`
}

// NoAuth returns the descriptor for a document with no security scheme.
func NoAuth() AuthDescriptor {
	return AuthDescriptor{Type: AuthTypeNone}
}

// FieldType enumerates the canonical field types.
// Every source schema type maps onto exactly one of these five values;
// unrecognized or missing types default to FieldTypeString.
type FieldType string

const (
	// FieldTypeString is the canonical string type (and the fallback type)
	FieldTypeString FieldType = "string"
	// FieldTypeNumber is the canonical numeric type (source number and integer)
	FieldTypeNumber FieldType = "number"
	// FieldTypeBoolean is the canonical boolean type
	FieldTypeBoolean FieldType = "boolean"
	// FieldTypeArray is the canonical array type
	FieldTypeArray FieldType = "array"
	// FieldTypeObject is the canonical object type
	FieldTypeObject FieldType = "object"
)

// Field is one canonical, possibly-nested schema property descriptor.
// Nesting depth is bounded during extraction, so a Field tree always
// terminates even for self-referential source schemas.
type Field struct {
	// Key is the property key in the source schema
	Key string `json:"key"`
	// Label is a display label derived from the key
	Label string `json:"label"`
	// Type is the canonical field type
	Type FieldType `json:"type"`
	// Required indicates whether the field is required
	Required bool `json:"required"`
	// Enum lists the allowed values, if the source schema declares any
	Enum []any `json:"enum,omitempty"`
	// Default is the declared default value, if any
	Default any `json:"default,omitempty"`
	// Format is the declared format hint (e.g., "date-time"), if any
	Format string `json:"format,omitempty"`
	// Example is the declared example value, if any
	Example any `json:"example,omitempty"`
	// Properties holds nested object fields when Type is object
	Properties []Field `json:"properties,omitempty"`
	// Items describes the element type when Type is array
	Items *Field `json:"items,omitempty"`
}

// Action is one canonical endpoint record. Identity for comparison purposes
// is the (Method, Path) pair, not the Slug: slugs are display identifiers
// and need not be unique across dialect quirks.
type Action struct {
	// Slug is a stable, URL-safe identifier derived from the operation
	// identifier, or synthesized from method and path when absent
	Slug string `json:"slug"`
	// Label is a human-readable display label
	Label string `json:"label"`
	// Description is the operation description, falling back to its summary
	Description string `json:"description,omitempty"`
	// Method is the upper-cased HTTP method
	Method string `json:"method"`
	// Path is the path template, possibly containing {param} placeholders
	Path string `json:"path"`
	// PathParams lists the path parameters
	PathParams []Field `json:"pathParams"`
	// QueryParams lists the query parameters
	QueryParams []Field `json:"queryParams"`
	// Body lists the request-body fields
	Body []Field `json:"body"`
	// Response lists the success-response fields
	Response []Field `json:"response"`
	// Tags lists the operation's tags, if any
	Tags []string `json:"tags,omitempty"`
	// Deprecated indicates the operation is marked deprecated
	Deprecated bool `json:"deprecated,omitempty"`
}

// Key returns the comparison identity "METHOD path" for this action.
func (a Action) Key() string {
	return a.Method + " " + a.Path
}

// Parameters returns the action's path and query parameters as one list,
// path parameters first.
func (a Action) Parameters() []Field {
	params := make([]Field, 0, len(a.PathParams)+len(a.QueryParams))
	params = append(params, a.PathParams...)
	params = append(params, a.QueryParams...)
	return params
}

// CanonicalAPI is the unified, dialect-independent representation of an API
// description document. It is owned exclusively by the normalizer and should
// be treated as immutable once returned.
type CanonicalAPI struct {
	// Name is the API title
	Name string `json:"name"`
	// Description is the API description, if any
	Description string `json:"description,omitempty"`
	// BaseURL is the resolved base URL, or a placeholder when none is declared
	BaseURL string `json:"baseUrl"`
	// Version is the declared API version
	Version string `json:"version"`
	// Auth describes the resolved authentication scheme
	Auth AuthDescriptor `json:"auth"`
	// Actions is the ordered list of canonical endpoint records
	Actions []Action `json:"actions"`
	// Warnings lists non-fatal issues accumulated during extraction
	Warnings []string `json:"warnings,omitempty"`
}
