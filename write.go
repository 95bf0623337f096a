package msgsource

import (
	"os"
	"path/filepath"
)

const (
	dirPerm    os.FileMode = 0o775
	filePerm   os.FileMode = 0o664
	lockSuffix             = ".lock"
)

// writeFileAtomic replaces path with data. The content goes to a temporary
// file in the same directory which is then renamed over path, so readers see
// either the old or the new file. Writers from other processes are excluded
// by an advisory lock on path+".lock" for the whole operation. The lock file
// stays behind; removing it would let a waiting writer lock an unlinked inode.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &IOError{Op: OpMkdir, Path: dir, Cause: err}
	}

	unlock, err := lockFile(path + lockSuffix)
	if err != nil {
		return &IOError{Op: OpLock, Path: path, Cause: err}
	}
	defer unlock()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: OpWrite, Path: path, Cause: err}
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: OpWrite, Path: path, Cause: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: OpRename, Path: path, Cause: err}
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(filePerm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
