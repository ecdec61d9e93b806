// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package examples

// Backend names the host language implementing an example's server logic.
// Its value is also the name of the example's subdirectory holding that
// implementation.
type Backend string

const (
	BackendR      Backend = "r"
	BackendPython Backend = "py"
)

// Backends lists supported backends in the order they are processed.
var Backends = []Backend{BackendR, BackendPython}

func (b Backend) Dir() string { return string(b) }

func (b Backend) DisplayName() string {
	if b == BackendR {
		return "R"
	}
	return "Python"
}

// PageSuffix is used to name the redirect page, e.g. "1-hello-python.html".
func (b Backend) PageSuffix() string {
	if b == BackendR {
		return "r"
	}
	return "python"
}

func (b Backend) PageName(id string) string {
	return id + "-" + b.PageSuffix() + ".html"
}

func (b Backend) BadgeColor() string {
	if b == BackendR {
		return "#3b82f6"
	}
	return "#059669"
}
