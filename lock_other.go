//go:build !unix

package msgsource

// lockFile is a no-op where flock(2) is unavailable. The rename in
// writeFileAtomic still keeps readers from seeing partial files.
func lockFile(path string) (func(), error) {
	return func() {}, nil
}
