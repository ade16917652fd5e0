package main

import "github.com/zeozeozeo/restdiv/cmd"

func main() {
	cmd.Execute()
}
