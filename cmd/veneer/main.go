// Package main provides the CLI entrypoint for veneer.
package main

func main() {
	Execute()
}
