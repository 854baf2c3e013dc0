package main

import "github.com/oshokin/project-template/cmd/manifest-updater/cmd"

func main() {
	cmd.Execute()
}
