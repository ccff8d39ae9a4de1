// SPDX-License-Identifier: MPL-2.0

package main

import cmd "titanium-cli/cmd/titanium"

func main() {
	cmd.Execute()
}
