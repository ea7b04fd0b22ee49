package main

import "guest_management/cmd"

func main() {
	cmd.Execute()
}
