package application

import "regexp"

// The detector is a byte-pattern scan, not an object-graph parse. Encrypted
// PDFs reference an encryption dictionary from the trailer (`/Encrypt 4 0 R`)
// and the standard security handler declares itself as `/Filter /Standard`
// inside that dictionary. Either marker classifies the document as
// encrypted. Exotic crypt-filter layouts can slip past this scan; widening
// it would mean real trailer resolution.
var (
	encryptRef     = regexp.MustCompile(`/Encrypt\s+\d+\s+\d+\s+R`)
	standardFilter = regexp.MustCompile(`/Filter\s*/Standard`)
)

// IsEncrypted reports whether the raw bytes carry an encryption dictionary
// marker. Pure function of the content.
func IsEncrypted(content []byte) bool {
	return encryptRef.Match(content) || standardFilter.Match(content)
}
