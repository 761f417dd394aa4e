package main

import "github.com/tunaminer/sha256x/cmd/sha256sum/cmd"

func main() {
	cmd.Execute()
}
