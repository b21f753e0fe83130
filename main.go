package main

import "furnidata-manager/cmd"

func main() {
	cmd.Execute()
}
