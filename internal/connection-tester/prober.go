package connection_tester

import (
	"Deployer_Microservice/internal/server-service/model"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

//go:generate mockgen -source=prober.go -destination=prober_mock.go -package=connection_tester

const probeFileName = ".deployer-connection-test"

type Prober interface {
	// Probe returns an error only when the job cannot be probed at all. Failures of the probe
	// itself are reported in ProbeResponse.Error.
	Probe(ctx context.Context, job model.ConnectionTestJob) (ProbeResponse, error)
}

type ProbeResponse struct {
	Error     error
	Attempts  int
	Latency   time.Duration
	Timestamp time.Time
}

type ProberConfig struct {
	Signer          ssh.Signer
	HostKeyCallback ssh.HostKeyCallback
	MaxRetries      int
	InitialBackoff  time.Duration
	DialTimeout     time.Duration
}

type sshProber struct {
	signer          ssh.Signer
	hostKeyCallback ssh.HostKeyCallback
	maxRetries      int
	initialBackoff  time.Duration
	dialTimeout     time.Duration
}

func (p *sshProber) Probe(ctx context.Context, job model.ConnectionTestJob) (ProbeResponse, error) {
	if job.IpAddress == "" || job.Port < 1 || job.Port > 65535 {
		return ProbeResponse{}, fmt.Errorf("sshProber.Probe: invalid address %q port %d", job.IpAddress, job.Port)
	}
	addr := net.JoinHostPort(job.IpAddress, strconv.Itoa(job.Port))
	clientConfig := &ssh.ClientConfig{
		User:            job.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(p.signer)},
		HostKeyCallback: p.hostKeyCallback,
		Timeout:         p.dialTimeout,
	}
	cmd := probeCommand(job.Path)

	start := time.Now()
	backoff := p.initialBackoff
	attempts := 0
	var err error
	for attempts < p.maxRetries {
		attempts++
		err = p.run(ctx, addr, clientConfig, cmd)
		if err == nil {
			return ProbeResponse{
				Attempts:  attempts,
				Latency:   time.Since(start),
				Timestamp: time.Now(),
			}, nil
		}
		if isPermanentProbeError(err) || attempts == p.maxRetries {
			break
		}
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			err = errors.Join(err, ctx.Err())
			return ProbeResponse{Error: err, Attempts: attempts, Latency: time.Since(start), Timestamp: time.Now()}, nil
		case <-timer.C:
		}
		backoff *= 2
	}
	return ProbeResponse{
		Error:     err,
		Attempts:  attempts,
		Latency:   time.Since(start),
		Timestamp: time.Now(),
	}, nil
}

func (p *sshProber) run(ctx context.Context, addr string, clientConfig *ssh.ClientConfig, cmd string) error {
	dialer := net.Dialer{Timeout: p.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		conn.Close()
		return err
	}
	client := ssh.NewClient(c, chans, reqs)
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()
	return session.Run(cmd)
}

// isPermanentProbeError reports errors that another attempt cannot fix.
func isPermanentProbeError(err error) bool {
	var keyErr *knownhosts.KeyError
	var exitErr *ssh.ExitError
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return true
	case errors.As(err, &keyErr), errors.As(err, &exitErr):
		return true
	case strings.Contains(err.Error(), "unable to authenticate"):
		return true
	}
	return false
}

func probeCommand(path string) string {
	return fmt.Sprintf("cd %s && touch %s && rm -f %s", shellQuote(path), probeFileName, probeFileName)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func LoadSigner(privateKeyPath string) (ssh.Signer, error) {
	b, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("LoadSigner: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(b)
	if err != nil {
		return nil, fmt.Errorf("LoadSigner: %w", err)
	}
	return signer, nil
}

// LoadHostKeyCallback accepts any host key when knownHostsPath is empty.
func LoadHostKeyCallback(knownHostsPath string) (ssh.HostKeyCallback, error) {
	if knownHostsPath == "" {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	callback, err := knownhosts.New(knownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("LoadHostKeyCallback: %w", err)
	}
	return callback, nil
}

func NewSSHProber(cfg ProberConfig) Prober {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return &sshProber{
		signer:          cfg.Signer,
		hostKeyCallback: cfg.HostKeyCallback,
		maxRetries:      cfg.MaxRetries,
		initialBackoff:  cfg.InitialBackoff,
		dialTimeout:     cfg.DialTimeout,
	}
}
