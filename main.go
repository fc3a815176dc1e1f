// SPDX-License-Identifier: MPL-2.0

package main

import cmd "loadstone/cmd/loadstone"

func main() {
	cmd.Execute()
}
