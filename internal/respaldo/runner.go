package respaldo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Runner abstrae las herramientas de dump/restore para poder probar los
// handlers sin un postgres corriendo.
type Runner interface {
	Dump(ctx context.Context, destino string) error
	Restore(ctx context.Context, origen string) error
	Ping(ctx context.Context) error
}

// PgRunner invoca pg_dump/pg_restore con las credenciales del entorno.
type PgRunner struct {
	Host     string
	Port     string
	DBName   string
	User     string
	Password string
}

func NewPgRunnerFromEnv() *PgRunner {
	return &PgRunner{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		DBName:   os.Getenv("DB_NAME"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
	}
}

func (p *PgRunner) env() []string {
	return append(os.Environ(), "PGPASSWORD="+p.Password)
}

func (p *PgRunner) args(extra ...string) []string {
	base := []string{"-h", p.Host, "-p", p.Port, "-U", p.User, "-d", p.DBName}
	return append(base, extra...)
}

func (p *PgRunner) Dump(ctx context.Context, destino string) error {
	cmd := exec.CommandContext(ctx, "pg_dump", p.args("-Fc", "-f", destino)...)
	cmd.Env = p.env()
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pg_dump: %v: %s", err, out)
	}
	return nil
}

func (p *PgRunner) Restore(ctx context.Context, origen string) error {
	cmd := exec.CommandContext(ctx, "pg_restore", p.args("--clean", "--if-exists", origen)...)
	cmd.Env = p.env()
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pg_restore: %v: %s", err, out)
	}
	return nil
}

func (p *PgRunner) Ping(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "pg_isready", "-h", p.Host, "-p", p.Port, "-U", p.User)
	cmd.Env = p.env()
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pg_isready: %v: %s", err, out)
	}
	return nil
}
