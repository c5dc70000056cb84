package config

import "fmt"

// DemoConfig lists the orders placed when the CLI runs without arguments.
type DemoConfig struct {
	Orders []string `json:"orders"`
}

// SetDefaults orders one of each drink on the menu.
func (c *DemoConfig) SetDefaults() {
	if c.Orders == nil {
		c.Orders = []string{"Expresso", "Latte", "Cappuccino"}
	}
}

// Validate ensures there is at least one order.
func (c DemoConfig) Validate() error {
	if len(c.Orders) == 0 {
		return fmt.Errorf("demo.orders must not be empty")
	}
	return nil
}
