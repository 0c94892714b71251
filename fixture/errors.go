// SPDX-License-Identifier: MIT
// Package: fixture
//
// errors.go - sentinel errors for the fixture package.

package fixture

import "errors"

// ErrUnknownKind indicates a Kind value or family name outside the known set.
var ErrUnknownKind = errors.New("fixture: unknown family")
