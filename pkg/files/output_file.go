// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
)

const tempFilePattern = "kjob-*.yaml"

type OutputFile struct {
	relativePath string
	data         []byte
}

func NewOutputFile(relativePath string, data []byte) OutputFile {
	return OutputFile{relativePath, data}
}

func (f OutputFile) Path(dirPath string) string {
	return filepath.Join(dirPath, f.relativePath)
}

func (f OutputFile) Create(dirPath string) error {
	resultPath := f.Path(dirPath)

	err := os.MkdirAll(filepath.Dir(resultPath), 0700)
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(resultPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer fd.Close()

	_, err = fd.Write(f.data)
	return err
}

// TempFile is a synced, closed file whose path can be handed
// to other processes.
type TempFile struct {
	path string
}

func (f TempFile) Path() string { return f.path }

func (f TempFile) Remove() error { return os.Remove(f.path) }

// CreateTemp writes data into a new file in dirPath (or the default
// temporary directory when empty). Nothing is left behind on failure.
func (f OutputFile) CreateTemp(dirPath string) (TempFile, error) {
	fd, err := os.CreateTemp(dirPath, tempFilePattern)
	if err != nil {
		return TempFile{}, fmt.Errorf("Creating temporary file: %s", err)
	}

	path := fd.Name()

	err = f.writeAndSync(fd)
	if err != nil {
		fd.Close()
		os.Remove(path)
		return TempFile{}, fmt.Errorf("Writing temporary file '%s': %s", path, err)
	}

	err = fd.Close()
	if err != nil {
		os.Remove(path)
		return TempFile{}, fmt.Errorf("Closing temporary file '%s': %s", path, err)
	}

	return TempFile{path}, nil
}

func (f OutputFile) writeAndSync(fd *os.File) error {
	_, err := fd.Write(f.data)
	if err != nil {
		return err
	}
	return fd.Sync()
}
