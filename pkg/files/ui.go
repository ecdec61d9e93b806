// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package files

type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
	Warnf(string, ...interface{})
}
