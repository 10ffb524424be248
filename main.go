package main

import (
	"log"
)

func main() {
	server, cleanup, err := InitializeServer()
	if err != nil {
		log.Fatalf("could not create server: %s", err)
	}
	defer cleanup()
	defer server.Supervisor.Recover()

	server.Supervisor.Go("http server", server.Run)
	server.Supervisor.Wait()
}
