package repl

import (
	"errors"
	"fmt"

	"warehouse-manager/internal/core"
)

// usage holds the static help text for each known command.
var usage = map[string]string{
	"show":    "show <ITEM> : Show product information",
	"buy":     "buy <ITEM> : Buy one unit of a product (if wallet has enough funds)",
	"balance": "balance : Show your wallet balance",
	"add":     "add <ITEM> <PRICE> : (Admin) Add a new product with a specific price (initial quantity 10)",
	"remove":  "remove <ITEM> : (Admin) Remove product from inventory",
	"rename":  "rename <OLD_ITEM> <NEW_ITEM> : (Admin) Rename a product",
	"price":   "price <ITEM> <NEW_PRICE> : (Admin) Change the price of a product",
	"credit":  "credit <USER> <AMOUNT> : (Admin) Increase the wallet balance of a user",
	"bulk":    "bulk <ITEM1> <QTY1> <ITEM2> <QTY2> ... : (Admin) Add products in bulk to inventory",
	"help":    "help <COMMAND> : Display help for a specific command",
}

func (s *session) printUsage(command string) {
	if text, ok := usage[command]; ok {
		fmt.Fprintln(s.out, text)
		return
	}
	fmt.Fprintln(s.out, "Command not found.")
}

func (s *session) printInvalidCommand() {
	fmt.Fprintln(s.out, "Invalid command. Use 'help' for command assistance.")
}

// renderError maps taxonomy errors onto the fixed console strings. Every one
// of them is recovered locally; the session keeps running.
func (s *session) renderError(err error) {
	switch {
	case errors.Is(err, core.ErrProductNotFound):
		fmt.Fprintln(s.out, "Product not found.")
	case errors.Is(err, core.ErrOutOfStock):
		fmt.Fprintln(s.out, "This product is out of stock.")
	case errors.Is(err, core.ErrInsufficientFunds):
		fmt.Fprintln(s.out, "Insufficient wallet balance.")
	case errors.Is(err, core.ErrDuplicateProduct):
		fmt.Fprintln(s.out, "This product has already been added.")
	case errors.Is(err, core.ErrCapacityExceeded):
		fmt.Fprintln(s.out, "Product capacity reached.")
	case errors.Is(err, core.ErrUserNotFound):
		fmt.Fprintln(s.out, "User not found.")
	default:
		s.logger.Error().Err(err).Msg("unexpected command error")
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
