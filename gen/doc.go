// Package gen constructs the initial d-regular realization handed to the
// SA controller, via stub-matching: pair up n*d stubs, shuffle, retry on
// an invalid pairing, up to a fixed bounded number of attempts.
package gen
