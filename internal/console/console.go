package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cart-service/internal/service"
)

const menuText = `
1. View Products
2. Add Item to Cart
3. View Cart
4. Update Quantity
5. Remove Item
6. Checkout
7. Exit`

// Menu drives the interactive shopping session. It holds no catalog or cart
// state of its own; every operation goes through the injected service.
type Menu struct {
	cart *service.ShoppingCart
	in   *bufio.Scanner
	out  io.Writer
}

// NewMenu creates a menu reading choices from in and printing to out.
func NewMenu(cart *service.ShoppingCart, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		cart: cart,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run loops until the user selects exit or input is exhausted.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, menuText)
		choice, ok := m.prompt("Enter choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.viewProducts()
		case "2":
			m.addItem()
		case "3":
			m.viewCart()
		case "4":
			m.updateQuantity()
		case "5":
			m.removeItem()
		case "6":
			fmt.Fprintf(m.out, "Checkout complete. (Simulation, receipt %s)\n", m.cart.Checkout())
		case "7":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptQuantity rejects non-integer input with a diagnostic, returning the
// caller to the menu.
func (m *Menu) promptQuantity(label string) (int, bool) {
	text, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	qty, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid quantity. Please enter a number.")
		return 0, false
	}
	return qty, true
}

func (m *Menu) viewProducts() {
	lines := m.cart.ProductLines()
	if len(lines) == 0 {
		fmt.Fprintln(m.out, "No products available.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(m.out, line)
	}
}

func (m *Menu) viewCart() {
	lines := m.cart.CartLines()
	if len(lines) == 0 {
		fmt.Fprintln(m.out, "Cart is empty.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(m.out, line)
	}
}

func (m *Menu) addItem() {
	productID, ok := m.prompt("Enter Product ID: ")
	if !ok {
		return
	}
	qty, ok := m.promptQuantity("Enter Quantity: ")
	if !ok {
		return
	}
	if !m.cart.AddItem(productID, qty) {
		fmt.Fprintln(m.out, "Could not add item.")
	}
}

func (m *Menu) updateQuantity() {
	productID, ok := m.prompt("Enter Product ID to update: ")
	if !ok {
		return
	}
	qty, ok := m.promptQuantity("Enter new quantity: ")
	if !ok {
		return
	}
	if !m.cart.UpdateQuantity(productID, qty) {
		fmt.Fprintln(m.out, "Update failed.")
	}
}

func (m *Menu) removeItem() {
	productID, ok := m.prompt("Enter Product ID to remove: ")
	if !ok {
		return
	}
	if !m.cart.RemoveItem(productID) {
		fmt.Fprintln(m.out, "Item not found.")
	}
}
