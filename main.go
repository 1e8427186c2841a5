// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// pyboot entry point

package main

import "github.com/sony-level/pyboot/cmd"

func main() {
	cmd.Execute()
}
