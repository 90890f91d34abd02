package main

import "github.com/inovacc/notr/cmd"

func main() {
	cmd.Execute()
}
