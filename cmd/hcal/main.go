package main

import (
	"github.com/klabast/wb-services/hcal/internal/commands"
)

func main() {
	commands.Execute()
}
