package main

import "github.com/jfmyers9/storefront/cmd"

func main() {
	cmd.Execute()
}
