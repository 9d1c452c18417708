// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"strings"
	"time"

	"carvel.dev/kjob/pkg/config"
	"carvel.dev/kjob/pkg/files"
	"carvel.dev/kjob/pkg/manifest"
	"carvel.dev/kjob/pkg/texttemplate"
	"carvel.dev/kjob/pkg/values"
	"carvel.dev/kjob/pkg/yamlmeta"
)

type UI interface {
	Debugf(string, ...interface{})
}

type Engine struct {
	resolver values.Resolver
	ui       UI
}

func NewEngine(resolver values.Resolver, ui UI) Engine {
	return Engine{resolver, ui}
}

// Source picks the template to render: the given file or, when an
// image was given instead, the built-in default.
func (e Engine) Source(cfg config.JobConfig) (files.Source, error) {
	if cfg.HasTemplate() {
		return files.NewSourceFromPath(cfg.Template), nil
	}
	if !cfg.HasImage() {
		return nil, config.ConfigurationError{
			Reason: "A pre-defined yaml file or docker image must be specified!"}
	}
	return DefaultSource(), nil
}

// Render produces the finished manifest text.
func (e Engine) Render(cfg config.JobConfig) (string, error) {
	source, err := e.Source(cfg)
	if err != nil {
		return "", err
	}

	data, err := source.Bytes()
	if err != nil {
		return "", err
	}

	name := cfg.Template
	if !cfg.HasTemplate() {
		name = defaultTemplateDesc
	}

	return e.Convert(data, name, cfg)
}

// Generate renders the manifest into a temporary file that is synced
// and closed before it is returned. Callers own the file.
func (e Engine) Generate(cfg config.JobConfig) (files.TempFile, error) {
	result, err := e.Render(cfg)
	if err != nil {
		return files.TempFile{}, err
	}

	tmpFile, err := files.NewOutputFile("", []byte(result)).CreateTemp("")
	if err != nil {
		return files.TempFile{}, err
	}

	e.ui.Debugf("wrote manifest to %s\n", tmpFile.Path())

	return tmpFile, nil
}

// Convert applies cfg to template data. desc names the template in errors.
func (e Engine) Convert(data []byte, desc string, cfg config.JobConfig) (string, error) {
	t1 := time.Now()

	defer func() {
		e.ui.Debugf("converted %s (%s)\n", desc, time.Since(t1))
	}()

	resolved, err := e.resolver.Resolve(cfg)
	if err != nil {
		return "", err
	}

	doc, err := yamlmeta.NewParser().ParseBytes(data, desc)
	if err != nil {
		return "", err
	}

	err = manifest.Patch(doc, cfg, resolved)
	if err != nil {
		return "", err
	}

	patched, err := doc.AsBytes()
	if err != nil {
		return "", err
	}

	err = e.resolver.VerifyRetryLimit(cfg)
	if err != nil {
		return "", err
	}

	resolved.Finalize()

	e.debugValues(resolved.Values)

	tpl := texttemplate.NewTemplate(string(patched))
	result := tpl.Apply(resolved.Values)

	if unknown := resolved.Values.Unknown(result); len(unknown) > 0 {
		e.ui.Debugf("left unknown placeholders untouched: %s\n", strings.Join(unknown, ", "))
	}

	return result, nil
}

func (e Engine) debugValues(vals *texttemplate.Values) {
	vals.Iterate(func(name string, value *string) {
		if value == nil {
			e.ui.Debugf("placeholder %s: (removed)\n", name)
		} else {
			e.ui.Debugf("placeholder %s: %s\n", name, *value)
		}
	})
}

