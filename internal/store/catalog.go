// Package store persists catalog snapshots: one product per line as
// `<name> <price> <quantity>`, space-separated. Names are not escaped, so a
// name containing spaces does not survive a round trip (documented
// limitation of the format).
package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"warehouse-manager/internal/core"
)

// Catalog reads and writes product snapshots at a fixed path.
type Catalog struct {
	path string
}

func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

// Save overwrites the snapshot with the given records, in order.
func (c *Catalog) Save(products []core.Product) error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("create catalog snapshot: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range products {
		fmt.Fprintf(w, "%s %d %d\n", p.Name, p.Price, p.Quantity)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write catalog snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot back. A missing file yields an empty catalog.
// The last two fields of each line are price and quantity; everything before
// them is the name, which best-effort reassembles names written with spaces.
// Malformed lines are skipped.
func (c *Catalog) Load() ([]core.Product, error) {
	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open catalog snapshot: %w", err)
	}
	defer f.Close()

	var products []core.Product
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		price, err := strconv.Atoi(fields[len(fields)-2])
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			continue
		}
		products = append(products, core.Product{
			Name:     strings.Join(fields[:len(fields)-2], " "),
			Price:    price,
			Quantity: quantity,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog snapshot: %w", err)
	}
	return products, nil
}
