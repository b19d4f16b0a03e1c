//go:build windows

package sshserver

import "fmt"

// SSH serving is unsupported on Windows

type Server struct {
	ListenAddress string
	GameBinary    string
	HostKeyFile   string
}

func (s *Server) ListenAndServe() error {
	return fmt.Errorf("sshserver: unsupported on windows")
}
