// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package kubectl drives a cluster through the kubectl binary: checking the
server version, submitting rendered manifests and inspecting, cancelling
and reading logs of submitted jobs.
*/
package kubectl
