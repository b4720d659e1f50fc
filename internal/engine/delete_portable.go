//go:build !unix

package engine

func isDirNotEmpty(err error) bool {
	return false
}
