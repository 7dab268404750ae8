package validator

import (
	"strings"

	"github.com/erraggy/specdiff/specerrors"
)

// resolveRefs walks the document and replaces internal "#/" $ref nodes with
// deep copies of their targets. The input document is never mutated. Every
// failure — external reference, missing target, depth limit — is reported as
// a reference issue, and the offending node is left in place so tolerant
// callers can continue.
func (v *Validator) resolveRefs(doc map[string]any) (map[string]any, []specerrors.Issue) {
	r := &refResolver{root: doc, maxDepth: v.maxRefDepth()}
	resolved, _ := r.resolve(doc, "$", 0).(map[string]any)
	return resolved, r.issues
}

type refResolver struct {
	root     map[string]any
	maxDepth int
	issues   []specerrors.Issue
}

func (r *refResolver) addIssue(path, ref, message string) {
	r.issues = append(r.issues, specerrors.Issue{Path: path, Ref: ref, Message: message})
}

// resolve returns a copy of node with references expanded. depth counts
// followed references, not tree depth.
func (r *refResolver) resolve(node any, path string, depth int) any {
	switch n := node.(type) {
	case map[string]any:
		if ref, ok := n["$ref"].(string); ok {
			return r.resolveRef(n, ref, path, depth)
		}
		out := make(map[string]any, len(n))
		for k, child := range n {
			out[k] = r.resolve(child, path+"."+k, depth)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, child := range n {
			out[i] = r.resolve(child, path, depth)
		}
		return out
	default:
		return node
	}
}

func (r *refResolver) resolveRef(node map[string]any, ref, path string, depth int) any {
	if !strings.HasPrefix(ref, "#/") {
		r.addIssue(path, ref, "external reference not supported")
		return copyShallowMap(node)
	}
	if depth >= r.maxDepth {
		r.addIssue(path, ref, "reference depth limit exceeded")
		return copyShallowMap(node)
	}
	target := lookupPointer(r.root, ref)
	if target == nil {
		r.addIssue(path, ref, "unresolved reference")
		return copyShallowMap(node)
	}
	return r.resolve(target, path, depth+1)
}

// lookupPointer walks a "#/a/b" JSON pointer through the document, handling
// the ~0 and ~1 escapes. Returns nil when any segment is missing.
func lookupPointer(root map[string]any, ref string) any {
	var current any = root
	for _, segment := range strings.Split(ref[2:], "/") {
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[segment]
		if !ok {
			return nil
		}
	}
	return current
}

func copyShallowMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
