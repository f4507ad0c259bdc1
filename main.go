// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/irnix/irnix/cmd/irnix"

func main() {
	cmd.Execute()
}
