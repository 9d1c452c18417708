// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

type Source interface {
	Description() string
	Bytes() ([]byte, error)
}

var _ []Source = []Source{BytesSource{}, StdinSource{}, LocalSource{}, HTTPSource{}}

// NewSourceFromPath picks a source based on the shape of path:
// "-" is stdin, http(s) URLs are fetched, anything else is a local file.
func NewSourceFromPath(path string) Source {
	switch {
	case path == "-":
		return NewStdinSource()
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		return NewHTTPSource(path)
	default:
		return NewLocalSource(path)
	}
}

type BytesSource struct {
	desc string
	data []byte
}

func NewBytesSource(desc string, data []byte) BytesSource { return BytesSource{desc, data} }

func (s BytesSource) Description() string    { return s.desc }
func (s BytesSource) Bytes() ([]byte, error) { return s.data, nil }

type StdinSource struct{}

func NewStdinSource() StdinSource { return StdinSource{} }

func (s StdinSource) Description() string    { return "stdin" }
func (s StdinSource) Bytes() ([]byte, error) { return ReadStdin() }

type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string { return fmt.Sprintf("file '%s'", s.path) }

func (s LocalSource) Bytes() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("Reading %s: %s", s.Description(), err)
	}
	return data, nil
}

type HTTPSource struct {
	url    string
	Client *http.Client
}

func NewHTTPSource(url string) HTTPSource { return HTTPSource{url, &http.Client{}} }

func (s HTTPSource) Description() string {
	return fmt.Sprintf("HTTP URL '%s'", s.url)
}

func (s HTTPSource) Bytes() ([]byte, error) {
	resp, err := s.Client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, resp.Status)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Reading URL '%s': %s", s.url, err)
	}

	return result, nil
}
