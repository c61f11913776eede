//go:build !avlinvariants

package avl

const invariantsEnabled = false
