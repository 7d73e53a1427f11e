package main

import "github.com/reoring/gltf/internal/cli"

func main() {
	cli.Execute()
}
