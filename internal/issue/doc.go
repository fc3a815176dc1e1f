// SPDX-License-Identifier: MPL-2.0

// Package issue maps diagnostic codes produced during boot-entry discovery
// and configuration validation to rendered remediation guides.
package issue
