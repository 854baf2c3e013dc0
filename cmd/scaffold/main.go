package main

import "github.com/oshokin/project-template/cmd/scaffold/cmd"

func main() {
	cmd.Execute()
}
