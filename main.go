// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/GabeRundlett/gvox-cli/cmd/gvoxcli"

func main() {
	cmd.Execute()
}
