// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"strings"

	"carvel.dev/kjob/pkg/texttemplate"
	"carvel.dev/kjob/pkg/values"
	"carvel.dev/kjob/pkg/yamlmeta"
)

const shellMarker = "/bin/sh"

// RewriteCommand expands the command arguments placeholder within a
// command. Before a shell invocation, a segment made of the placeholder
// alone is replaced by all args; any other occurrence is replaced by the
// args joined with spaces.
func RewriteCommand(command []string, cmdArgs []string) []string {
	token := texttemplate.Token(values.CmdArgs)
	joined := strings.Join(cmdArgs, " ")

	var result []string
	shellFound := false

	for _, segment := range command {
		if strings.HasPrefix(segment, shellMarker) {
			shellFound = true
		}

		switch {
		case segment == token && !shellFound:
			result = append(result, cmdArgs...)
		case strings.Contains(segment, token):
			result = append(result, strings.ReplaceAll(segment, token, joined))
		default:
			result = append(result, segment)
		}
	}

	return result
}

// RewriteCommands replaces the command of every container that has a
// sequence command with an indexed placeholder, whose value is set to
// the rewritten command encoded as a single line JSON array.
func RewriteCommands(root yamlmeta.Node, cmdArgs []string, vals *texttemplate.Values) error {
	containers, err := yamlmeta.Get(root, containersPath, nil)
	if err != nil {
		return err
	}

	typedContainers, ok := containers.(*yamlmeta.Array)
	if !ok {
		return nil
	}

	for i, container := range typedContainers.Items {
		typedContainer, ok := container.(*yamlmeta.Map)
		if !ok {
			continue
		}

		command, found := typedContainer.Get(commandKey)
		if !found {
			continue
		}

		typedCommand, ok := command.(*yamlmeta.Array)
		if !ok {
			continue
		}

		segments, err := commandSegments(typedCommand, containerPath(i))
		if err != nil {
			return err
		}

		encoded, err := values.EncodeJSONArray(RewriteCommand(segments, cmdArgs))
		if err != nil {
			return fmt.Errorf("Encoding command of container %d: %s", i, err)
		}

		name := values.IndexedCmdArgs(i)

		typedContainer.Set(commandKey, placeholder(name))
		vals.SetString(name, encoded)
	}

	return nil
}

func commandSegments(command *yamlmeta.Array, path string) ([]string, error) {
	var result []string

	for j, item := range command.Items {
		scalar, ok := item.(*yamlmeta.Scalar)
		if !ok || scalar.IsNull() {
			return nil, fmt.Errorf("Expected '%s.%s.%d' to be a string", path, commandKey, j)
		}
		result = append(result, scalar.Value)
	}

	return result, nil
}
