package main

import "trader-board/cmd"

func main() {
	cmd.Execute()
}
