package application

import (
	"bytes"
	"regexp"
)

var (
	objMarker  = regexp.MustCompile(`\d+\s+\d+\s+obj`)
	xrefStream = regexp.MustCompile(`/Type\s*/XRef`)
)

// CheckIntegrity reports whether the byte stream looks like a well-formed,
// non-truncated PDF. It verifies the structural anchors a parser needs:
// header signature, at least one object definition, a cross-reference
// section, a trailer carrying the Root entry, and the end-of-file marker.
// Reports via boolean, never an error.
func CheckIntegrity(content []byte) bool {
	if !bytes.HasPrefix(content, pdfMagic) {
		return false
	}
	if !objMarker.Match(content) {
		return false
	}
	if !bytes.Contains(content, []byte("xref")) {
		return false
	}
	if !hasTrailerRoot(content) {
		return false
	}
	return bytes.Contains(content, []byte("%%EOF"))
}

// hasTrailerRoot looks for /Root in the last trailer section. Documents
// written with cross-reference streams have no trailer keyword; for those
// the Root entry lives in the XRef stream dictionary instead.
func hasTrailerRoot(content []byte) bool {
	if idx := bytes.LastIndex(content, []byte("trailer")); idx >= 0 {
		return bytes.Contains(content[idx:], []byte("/Root"))
	}
	return xrefStream.Match(content) && bytes.Contains(content, []byte("/Root"))
}
