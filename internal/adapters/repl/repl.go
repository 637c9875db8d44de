package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"warehouse-manager/internal/app"
	"warehouse-manager/internal/audit"
)

// Run owns the outer authentication loop: prompt for credentials, start an
// authenticated session on success, and repeat until the operator chooses
// to exit (or input ends).
func Run(ctx context.Context, svc app.ApplicationService, sink audit.Sink, logger zerolog.Logger, in *bufio.Reader, out io.Writer) {
	fmt.Fprintln(out, "==== Warehouse Management System (WMS) ====")

	for {
		fmt.Fprintln(out, "\nLogin")
		fmt.Fprint(out, "Username: ")
		username, ok := readLine(in)
		if !ok {
			return
		}
		fmt.Fprint(out, "Password: ")
		password, ok := readLine(in)
		if !ok {
			return
		}

		principal, err := svc.Authenticate(ctx, username, password)
		if err != nil {
			fmt.Fprintln(out, "Incorrect username or password.")
			sink.Record("Failed login attempt for user: " + username)
			continue
		}

		fmt.Fprintf(out, "Login successful! Welcome %s\n", principal.Username)
		sink.Record(principal.Username + " logged in successfully.")

		s := newSession(svc, sink, principal, logger, out)
		s.loop(ctx, in)

		fmt.Fprint(out, "\nTo exit the program, type 'exit' or press any key to login again: ")
		choice, ok := readLine(in)
		if !ok || choice == "exit" {
			return
		}
	}
}

// session is one authenticated command loop, bound to a single user by
// username for its whole lifetime. Wallet changes made through the registry
// are visible to the next command immediately.
type session struct {
	svc    app.ApplicationService
	sink   audit.Sink
	user   string
	admin  bool
	out    io.Writer
	logger zerolog.Logger
}

func newSession(svc app.ApplicationService, sink audit.Sink, principal *app.SessionResult, logger zerolog.Logger, out io.Writer) *session {
	return &session{
		svc:   svc,
		sink:  sink,
		user:  principal.Username,
		admin: principal.IsAdmin,
		out:   out,
		logger: logger.With().
			Str("component", "session").
			Str("session_id", uuid.NewString()).
			Str("user", principal.Username).
			Logger(),
	}
}

// loop reads command lines until logout or end of input. Blank lines
// re-prompt without being dispatched or audited.
func (s *session) loop(ctx context.Context, in *bufio.Reader) {
	s.logger.Info().Msg("session started")
	for {
		fmt.Fprintf(s.out, "\n[%s]> ", s.user)
		line, ok := readLine(in)
		if !ok {
			s.logger.Info().Msg("input closed, ending session")
			return
		}
		if len(tokenize(line)) == 0 {
			continue
		}

		s.sink.Record(s.user + " entered command: " + line)
		if s.exec(ctx, line) {
			s.logger.Info().Msg("session ended")
			return
		}
	}
}

// exec dispatches one non-blank command line. It returns true when the
// session transitioned to logged-out.
//
// Admin commands issued by a non-admin fall through to the same response as
// an unknown command. That silent fallthrough is deliberate and load-bearing
// for the interactive protocol; it is not a security boundary.
func (s *session) exec(ctx context.Context, raw string) bool {
	tokens := tokenize(raw)
	command, args := tokens[0], tokens[1:]

	switch command {
	case "logout":
		fmt.Fprintln(s.out, "Logging out...")
		s.sink.Record(s.user + " logged out.")
		return true

	case "help":
		s.printUsage(arg(args, 0))

	case "balance":
		wallet, err := s.svc.Balance(ctx, s.user)
		if err != nil {
			s.renderError(err)
			break
		}
		fmt.Fprintf(s.out, "Your wallet balance: %d\n", wallet)

	case "show":
		p, err := s.svc.ShowProduct(ctx, arg(args, 0))
		if err != nil {
			s.renderError(err)
			break
		}
		fmt.Fprintf(s.out, "Product: %s | Price: %d | Quantity: %d\n", p.Name, p.Price, p.Quantity)

	case "buy":
		result, err := s.svc.BuyProduct(ctx, s.user, arg(args, 0))
		if err != nil {
			s.renderError(err)
			break
		}
		fmt.Fprintf(s.out, "Purchase successful! %s has been purchased.\n", result.Product)

	case "add", "remove", "rename", "price", "credit", "bulk":
		if !s.admin {
			s.printInvalidCommand()
			break
		}
		s.execAdmin(ctx, command, args)

	default:
		s.printInvalidCommand()
	}
	return false
}

func (s *session) execAdmin(ctx context.Context, command string, args []string) {
	switch command {
	case "add":
		price, err := parseInt(arg(args, 1))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid price entered.")
			return
		}
		item := arg(args, 0)
		if err := s.svc.AddProduct(ctx, item, price); err != nil {
			s.renderError(err)
			return
		}
		fmt.Fprintf(s.out, "Product %s added with price %d (initial quantity: 10).\n", item, price)

	case "remove":
		item := arg(args, 0)
		if err := s.svc.RemoveProduct(ctx, item); err != nil {
			s.renderError(err)
			return
		}
		fmt.Fprintf(s.out, "Product %s has been removed.\n", item)

	case "rename":
		newName := arg(args, 1)
		if err := s.svc.RenameProduct(ctx, arg(args, 0), newName); err != nil {
			s.renderError(err)
			return
		}
		fmt.Fprintf(s.out, "Product successfully renamed to %s.\n", newName)

	case "price":
		newPrice, err := parseInt(arg(args, 1))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid price entered.")
			return
		}
		item := arg(args, 0)
		if err := s.svc.SetPrice(ctx, item, newPrice); err != nil {
			s.renderError(err)
			return
		}
		fmt.Fprintf(s.out, "Price of product %s has been changed to %d.\n", item, newPrice)

	case "credit":
		amount, err := parseInt(arg(args, 1))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid amount entered.")
			return
		}
		target := arg(args, 0)
		if err := s.svc.CreditWallet(ctx, target, amount); err != nil {
			s.renderError(err)
			return
		}
		fmt.Fprintf(s.out, "Wallet balance of %s increased by %d.\n", target, amount)

	case "bulk":
		s.execBulk(ctx, args)
	}
}

// execBulk processes (item, qty) pairs left to right. A qty that fails to
// parse, or a trailing item with no qty, aborts the remaining pairs while
// keeping the effects already applied. A capacity failure skips only its own
// pair.
func (s *session) execBulk(ctx context.Context, args []string) {
	for i := 0; i < len(args); i += 2 {
		item := args[i]
		if i+1 >= len(args) {
			fmt.Fprintf(s.out, "Invalid input for product %s\n", item)
			return
		}
		qty, err := parseInt(args[i+1])
		if err != nil {
			fmt.Fprintf(s.out, "Invalid input for product %s\n", item)
			return
		}

		result, err := s.svc.BulkAdjust(ctx, item, qty)
		if err != nil {
			s.renderError(err)
			continue
		}
		if result.Created {
			fmt.Fprintf(s.out, "Product %s added as a new product (default price: 100, quantity: %d).\n", item, qty)
		} else {
			fmt.Fprintf(s.out, "Quantity of product %s increased by %d.\n", item, qty)
		}
	}
}

// readLine reads one line, stripping the trailing newline. ok is false once
// input is exhausted.
func readLine(in *bufio.Reader) (string, bool) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
