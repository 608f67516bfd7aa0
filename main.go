// SPDX-License-Identifier: MPL-2.0

// measure converts typed quantities between the units and scales of a family.
package main

import cmd "github.com/invowk/measure/cmd/measure"

func main() {
	cmd.Execute()
}
