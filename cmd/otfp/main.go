package main

import "github.com/OpenTraceLab/OpenTracePattern/cmd/otfp/cmd"

func main() {
	cmd.Execute()
}
