package normalizer

// maxNestingDepth bounds object nesting during schema flattening, measured in
// levels below the top-level call. Flattening at or beyond this depth returns
// an empty list, which silently truncates documentation depth for deeply
// nested payloads and guarantees termination on self-referential schemas.
// The exact off-by-one matters: a schema nested four object-levels deep
// yields empty field lists from the third nested level onward.
const maxNestingDepth = 2

// flattenSchema converts a schema node into a flat list of typed field
// descriptors. Object properties become one Field each, with the node's
// required list mapped onto each Field's required flag. Nested object
// properties recurse with depth+1; array properties produce a synthetic
// "item" Field describing the element type. A top-level array schema is
// flattened through its item schema at the same depth: only object nesting
// consumes a depth level.
//
// Any panic during flattening is recovered, recorded on the sink, and yields
// an empty field list for that subtree rather than aborting the caller.
func flattenSchema(node map[string]any, sink *WarningSink, depth int) (fields []Field) {
	defer func() {
		if r := recover(); r != nil {
			if sink != nil {
				sink.Addf("schema conversion failed: %v", r)
			}
			fields = nil
		}
	}()

	if depth >= maxNestingDepth {
		return nil
	}
	if node == nil {
		return nil
	}

	// Arrays flatten through their item schema without consuming depth.
	if getString(node, "type") == "array" {
		return flattenSchema(getMap(node, "items"), sink, depth)
	}

	props := getMap(node, "properties")
	if props == nil {
		return nil
	}

	required := make(map[string]bool)
	for _, key := range getStringSlice(node, "required") {
		required[key] = true
	}

	fields = make([]Field, 0, len(props))
	for _, key := range sortedKeys(props) {
		prop := asMap(props[key])
		if prop == nil {
			continue
		}
		field := schemaField(key, prop)
		field.Required = required[key]

		switch field.Type {
		case FieldTypeObject:
			field.Properties = flattenSchema(prop, sink, depth+1)
		case FieldTypeArray:
			if items := getMap(prop, "items"); items != nil {
				item := schemaField("item", items)
				if item.Type == FieldTypeObject {
					item.Properties = flattenSchema(items, sink, depth+1)
				}
				field.Items = &item
			}
		}
		fields = append(fields, field)
	}
	return fields
}

// schemaField builds a Field from one property schema, without recursing.
func schemaField(key string, schema map[string]any) Field {
	return Field{
		Key:     key,
		Label:   labelForKey(key),
		Type:    mapSchemaType(schema["type"]),
		Enum:    getSlice(schema, "enum"),
		Default: schema["default"],
		Format:  getString(schema, "format"),
		Example: schema["example"],
	}
}

// mapSchemaType maps a declared schema type onto the canonical five-value
// set. Anything unrecognized, including a missing type, maps to string.
func mapSchemaType(raw any) FieldType {
	s, _ := raw.(string)
	switch s {
	case "string":
		return FieldTypeString
	case "number", "integer":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	case "array":
		return FieldTypeArray
	case "object":
		return FieldTypeObject
	default:
		return FieldTypeString
	}
}
