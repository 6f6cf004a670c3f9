package main

import (
	"log"

	"github.com/fleetdecolombia/FleetMantenimiento/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
