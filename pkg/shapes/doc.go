// Package shapes is a set of self-registering productions. Each shape lives
// in its own file together with its registration; importing the package is
// enough to make every shape available through the factory.
package shapes
