// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of kjob.

Packages are layered; each depends only on the layers below it.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

	./cmd/kjob                 // a command-line tool

	(1) => pkg/cmd => (9)
	(4) => pkg/cmd/ui => (0)

Commands either render a manifest (template), render and submit it (submit)
or inspect submitted jobs through kubectl (list, status, cancel, logs).

# Rendering

Rendering turns a job config and a base manifest into the final manifest:

	config -> values (resolve) -> manifest (patch) -> yamlmeta (print) -> texttemplate (substitute)

	(1) => pkg/template => (6)
	(2) => pkg/values => (3)
	(2) => pkg/manifest => (5)
	(3) => pkg/texttemplate => (1)

Placeholders ("$(NAME)") are substituted line by line. A placeholder without
a value removes the whole line, which is how optional manifest settings
disappear.

# Structure

Optional sections (node selectors, tolerations, persistent disks) and
command rewrites are structural edits, made on a parsed document at
dotted paths (eg "spec.template.spec.containers.0").

	(3) => pkg/yamlmeta => (0)

yamlmeta delegates parsing and printing YAML to gopkg.in/yaml.v3 and keeps
its own small tree (maps keep key order) for edits.

# Cluster

	(2) => pkg/kubectl => (0)

# Supporting

	(6) => pkg/config => (1)
	(3) => pkg/files => (0)
	(4) => pkg/orderedmap => (0)
	(2) => pkg/version => (0)
*/
package pkg
