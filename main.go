package main

import "github.com/vikwab/failsift/cmd"

func main() {
	cmd.Execute()
}
