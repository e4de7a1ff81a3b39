// Package xmlutils provides XPath helpers for inspecting generated
// pain.001 documents.
package xmlutils

import (
	"fmt"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// ParseString parses XML content into a node tree for XPath queries.
func ParseString(content string) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// ExtractAll returns every value matching the XPath expression.
func ExtractAll(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}
	return values, nil
}

// ExtractOne returns the first value matching the XPath expression.
func ExtractOne(root *xmlpath.Node, xpath string) (string, bool) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return "", false
	}
	return path.String(root)
}
