//go:build !windows

// Package sshserver hosts the yahoozy binary in a pseudo-terminal for
// each incoming SSH session, so the game can be played without
// installing anything. The SSH user name becomes the player name.
package sshserver

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// IdleTimeout disconnects sessions with no activity.
const IdleTimeout = 5 * time.Minute

// Server hosts the game over SSH.
type Server struct {
	// ListenAddress is the host:port to listen on.
	ListenAddress string
	// GameBinary is the path to the yahoozy binary to spawn.
	GameBinary string
	// HostKeyFile is the SSH host key. Empty means ~/.ssh/id_rsa.
	HostKeyFile string
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

func (s *Server) handle(session ssh.Session) {
	ptyReq, winCh, isPty := session.Pty()
	if !isPty {
		io.WriteString(session, "non-interactive terminals are not supported\n")
		session.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(session.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.GameBinary, "-player", session.User())
	cmd.Env = append(session.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		io.WriteString(session, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		session.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, session)
	}()
	io.Copy(session, f)

	cancelCmd()
	cmd.Wait()
}

// ListenAndServe runs the server until it fails.
func (s *Server) ListenAndServe() error {
	if s.ListenAddress == "" {
		return fmt.Errorf("sshserver: ListenAddress must be specified")
	}
	if s.GameBinary == "" {
		return fmt.Errorf("sshserver: GameBinary must be specified")
	}

	hostKey := s.HostKeyFile
	if hostKey == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("sshserver: resolve home dir: %w", err)
		}
		hostKey = filepath.Join(homeDir, ".ssh", "id_rsa")
	}

	server := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: IdleTimeout,
		Handler:     s.handle,
		// The game is single player and keeps no secrets; let
		// anyone in regardless of how their client authenticates
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if err := server.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
		return fmt.Errorf("sshserver: load host key: %w", err)
	}

	log.Printf("Listening at %s", s.ListenAddress)
	return server.ListenAndServe()
}
