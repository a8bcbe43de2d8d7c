package main

import "github.com/davidvella/priq/cmd/priq-bench/cmd"

func main() {
	cmd.Execute()
}
