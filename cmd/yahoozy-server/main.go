package main

import (
	"flag"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/velbaek/yahoozy/pkg/sshserver"
	"github.com/velbaek/yahoozy/pkg/util"
)

func main() {
	addr := flag.String("addr", ":2222", "address to listen for SSH sessions")
	bin := flag.String("bin", "yahoozy", "path to the yahoozy binary")
	hostKey := flag.String("hostkey", "", "SSH host key file (default ~/.ssh/id_rsa)")
	logPath := flag.String("log", "./log", "path to log file")
	flag.Parse()
	util.InitLog(*logPath, "SERVER: ")
	log.Println("Server started")

	color.Green("yahoozy-server listening on %s", *addr)
	color.White("connect with: ssh -p 2222 <player>@<host>")

	srv := &sshserver.Server{
		ListenAddress: *addr,
		GameBinary:    *bin,
		HostKeyFile:   *hostKey,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Printf("server stopped: %v", err)
		color.Red("yahoozy-server: %v", err)
		os.Exit(1)
	}
}
