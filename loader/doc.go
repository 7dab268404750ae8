/*
Package loader acquires API description documents and deserializes them.

The loader reads a local file or fetches an HTTP(S) URL, auto-detects JSON
versus YAML (by extension, Content-Type, then content sniffing), and decodes
the document into a generic map ready for the normalizer.

# Usage

	doc, err := loader.Load("openapi.yaml")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("loaded %s (%s, %d bytes)\n", doc.SourcePath, doc.SourceFormat, doc.SourceSize)

A Loader instance carries configuration for URL fetching:

	l := loader.New()
	l.UserAgent = "my-tool/1.0"
	doc, err := l.Load("https://example.com/api/openapi.json")

The loader performs no validation and resolves no references; it only turns
bytes into a map. Validation belongs to the validator package and canonical
extraction to the normalizer package.
*/
package loader
