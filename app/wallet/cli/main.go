package main

import "github.com/ardanlabs/auction/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
