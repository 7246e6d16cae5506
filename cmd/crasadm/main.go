// Command crasadm performs offline maintenance on the CRAS agenda store:
// seeding, listing staff accounts, adding accounts and resetting passwords.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
	"github.com/cras-office/agenda/internal/core/service"
	"github.com/cras-office/agenda/internal/infrastructure/config"
	"github.com/cras-office/agenda/internal/infrastructure/store"
	"github.com/cras-office/agenda/pkg/logger"
)

// readPassword is replaced in tests.
var readPassword = term.ReadPassword

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)
		return errors.New("subcommand required")
	}

	switch args[0] {
	case "init", "users", "useradd", "passwd":
	case "-h", "--help", "help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown subcommand: %q", args[0])
	}

	// JWT_SECRET is only needed by the server.
	cfg, err := config.LoadFrom(ctx, envconfig.MultiLookuper(
		envconfig.OsLookuper(),
		envconfig.MapLookuper(map[string]string{"JWT_SECRET": "unused"}),
	))
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr, Service: "crasadm"})

	opened, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer opened.Close()

	a := &admin{
		records: service.NewRecords(opened.Store),
		log:     log,
		out:     out,
	}
	a.users = service.NewUserService(a.records, log)

	switch args[0] {
	case "init":
		return a.initialize(ctx)
	case "users":
		return a.listUsers(ctx)
	case "useradd":
		return a.addUser(ctx, args[1:])
	default:
		return a.resetPassword(ctx, args[1:])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: crasadm <subcommand> [flags]

Subcommands:
  init        Seed default users and appointments if the store is empty
  users       List staff accounts
  useradd     Create a staff account (--name, --email, --role)
  passwd      Reset the password of the account with --email

Store selection follows the server environment (STORE_BACKEND, SQLITE_PATH, ...).
`)
}

type admin struct {
	records *service.Records
	users   *service.UserService
	log     zerolog.Logger
	out     io.Writer
}

func (a *admin) initialize(ctx context.Context) error {
	if err := service.NewSeeder(a.records, a.log).Initialize(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "store initialized")
	return nil
}

func (a *admin) listUsers(ctx context.Context) error {
	users, err := a.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return tw.Flush()
}

func (a *admin) addUser(ctx context.Context, args []string) error {
	var name, email, role string
	fs := pflag.NewFlagSet("useradd", pflag.ContinueOnError)
	fs.StringVar(&name, "name", "", "full name")
	fs.StringVar(&email, "email", "", "login email")
	fs.StringVar(&role, "role", string(domain.RoleRegistrar), "Administrador or Cadastrador")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if name == "" || email == "" {
		return errors.New("--name and --email are required")
	}
	if !domain.Role(role).Valid() {
		return fmt.Errorf("invalid role %q", role)
	}

	password, err := a.promptPassword()
	if err != nil {
		return err
	}

	u, err := a.users.AddUser(ctx, ports.NewUserInput{
		Name:     name,
		Email:    email,
		Role:     domain.Role(role),
		Password: password,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created user %s\n", u.ID)
	return nil
}

func (a *admin) resetPassword(ctx context.Context, args []string) error {
	var email string
	fs := pflag.NewFlagSet("passwd", pflag.ContinueOnError)
	fs.StringVar(&email, "email", "", "login email of the account")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if email == "" {
		return errors.New("--email is required")
	}

	users, err := a.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	var id string
	for _, u := range users {
		if u.Email == email {
			id = u.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, email)
	}

	password, err := a.promptPassword()
	if err != nil {
		return err
	}
	if _, err := a.users.UpdateUser(ctx, ports.UserPatch{ID: id, Password: &password}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "password updated for %s\n", email)
	return nil
}

func (a *admin) promptPassword() (string, error) {
	fmt.Fprint(a.out, "New password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	if len(pw) == 0 {
		return "", errors.New("empty password")
	}
	return string(pw), nil
}
