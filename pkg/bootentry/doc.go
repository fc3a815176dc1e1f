// SPDX-License-Identifier: MPL-2.0

// Package bootentry defines the contract between the boot manager and boot
// entry plugins, and the registry/aggregator machinery that runs a scan pass
// across an open set of plugins.
//
// A plugin contributes bootable menu entries discovered on a filesystem (or
// private "custom" entries tied to no volume). The boot manager builds a
// Registry per scan pass, registers every loaded plugin, and calls Collect
// once per scan target. Faults are isolated: one misbehaving plugin never
// aborts collection for the others, and "nothing to offer" is an expected
// outcome, not an error.
//
// The package is deliberately dependency-free so out-of-tree plugins can
// implement the contract without inheriting the CLI's stack.
package bootentry
