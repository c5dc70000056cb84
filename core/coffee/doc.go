// Package coffee defines the closed set of drinks the machine can brew. Each
// drink implements Coffee and produces a fixed preparation message.
package coffee
