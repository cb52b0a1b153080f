// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/packageexpress/shipcalc/cmd/shipcalc"

func main() {
	cmd.Execute()
}
