package main

import "github.com/yigit/examdesk/cmd/examctl/cmd"

func main() {
	cmd.Execute()
}
