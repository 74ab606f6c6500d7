package main

import "github.com/Tiliavir/sentimizer/cmd"

func main() {
	cmd.Execute()
}
