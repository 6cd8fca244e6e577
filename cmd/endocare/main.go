package main

import "endocare/cmd/endocare/cmd"

func main() {
	cmd.Execute()
}
