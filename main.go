package main

import "github.com/quaverd/midievent/cmd"

func main() {
	cmd.Execute()
}
