//go:build avlinvariants

package avl

// invariantsEnabled turns assertion failures into panics and makes every
// Insert verify the whole tree.
const invariantsEnabled = true
