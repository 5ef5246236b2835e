package dataset

import (
	"encoding/json"
	"regexp"
	"strings"
)

// TagNode is one node of the domain tag tree. Labels carry a leading
// ordinal ("1 汽车", "1.1 汽车品牌") that is part of the persisted format.
type TagNode struct {
	Label string    `json:"label"`
	Child []TagNode `json:"child,omitempty"`
}

// maxTagDepth limits the tree to primary and secondary levels.
const maxTagDepth = 2

// tagLabelPattern matches "<ordinal> <text>" where the ordinal is a
// dot-separated number sequence ("3", "1.2").
var tagLabelPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)\s+\S`)

// leadingOrdinalPattern matches the ordinal prefix for stripping.
var leadingOrdinalPattern = regexp.MustCompile(`^\s*\d+(?:\.\d+)*\s*[、.。]?\s*`)

// RemoveLeadingOrdinal strips the numbering prefix from a tag label,
// returning just the text ("1.1 汽车品牌" -> "汽车品牌"). Labels without a
// prefix are returned unchanged.
func RemoveLeadingOrdinal(label string) string {
	return leadingOrdinalPattern.ReplaceAllString(label, "")
}

// ValidateTagTree parses an extracted JSON array of tag nodes and checks
// the tree invariants: every label matches the "<ordinal> <text>" shape,
// the tree is at most two levels deep, and ordinals are unique among
// siblings. Any violation rejects the whole tree.
func ValidateTagTree(raw []byte) ([]TagNode, error) {
	var nodes []TagNode
	if err := json.Unmarshal(raw, &nodes); err != nil {
		return nil, NewValidationError(KindMalformedTagTree, "tag tree payload is not a node array: %v", err)
	}
	if len(nodes) == 0 {
		return nil, NewValidationError(KindMalformedTagTree, "tag tree is empty")
	}
	if err := validateSiblings(nodes, 1); err != nil {
		return nil, err
	}
	return nodes, nil
}

// validateSiblings checks one sibling group at the given depth and recurses
// into children.
func validateSiblings(nodes []TagNode, depth int) error {
	if depth > maxTagDepth {
		return NewValidationError(KindMalformedTagTree, "tree exceeds %d levels", maxTagDepth)
	}

	seen := make(map[string]struct{}, len(nodes))
	for _, node := range nodes {
		ordinal, err := labelOrdinal(node.Label)
		if err != nil {
			return err
		}
		if _, dup := seen[ordinal]; dup {
			return NewValidationError(KindMalformedTagTree, "duplicate sibling ordinal %q", ordinal)
		}
		seen[ordinal] = struct{}{}

		if len(node.Child) > 0 {
			if err := validateSiblings(node.Child, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// labelOrdinal extracts the ordinal prefix from a label, failing when the
// label does not match the "<ordinal> <text>" shape.
func labelOrdinal(label string) (string, error) {
	m := tagLabelPattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return "", NewValidationError(KindMalformedTagTree, "label %q lacks an ordinal prefix", label)
	}
	return m[1], nil
}

// ValidateTagLabels parses a flat JSON array of ordinal-prefixed labels as
// produced by tag distillation ("1.1 汽车品牌"). Each label must carry an
// ordinal prefix and ordinals must be unique within the batch.
func ValidateTagLabels(raw []byte) ([]string, error) {
	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, NewValidationError(KindMalformedTagTree, "tag payload is not a string array: %v", err)
	}
	if len(labels) == 0 {
		return nil, NewValidationError(KindMalformedTagTree, "no tags in response")
	}

	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		ordinal, err := labelOrdinal(label)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[ordinal]; dup {
			return nil, NewValidationError(KindMalformedTagTree, "duplicate ordinal %q in tag batch", ordinal)
		}
		seen[ordinal] = struct{}{}
		out = append(out, label)
	}
	return out, nil
}
