package main

import "trimble-export/cmd"

func main() {
	cmd.Execute()
}
