package main

import "ipo-tracker/cmd"

func main() {
	cmd.Execute()
}
