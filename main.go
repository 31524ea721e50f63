package main

import "github.com/healinghandsmipt/website_backend/cmd"

func main() {
	cmd.Execute()
}
