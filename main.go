package main

import "github.com/evdash/evdash/pkg/cmd"

func main() {
	cmd.Execute()
}
