package main

import "github.com/nimblemo/bodygraph/cmd"

func main() {
	cmd.Execute()
}
