package main

import "civic-sync/cmd"

func main() {
	cmd.Execute()
}
